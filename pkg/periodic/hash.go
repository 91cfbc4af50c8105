package periodic

import (
	"math/bits"

	"github.com/dolthub/maphash"
)

// Hasher hashes sequences of T. Equal sequences hash alike under the same
// Hasher; hashes from different Hashers are unrelated.
type Hasher[T comparable] struct {
	elem maphash.Hasher[T]
	size maphash.Hasher[int]
}

// NewHasher returns a Hasher with a fresh random seed.
func NewHasher[T comparable]() Hasher[T] {
	return Hasher[T]{elem: maphash.NewHasher[T](), size: maphash.NewHasher[int]()}
}

// Hash returns the hash of s. Both part lengths are mixed in so that
// moving an element between prefix and cycle changes the hash.
func (h Hasher[T]) Hash(s Sequence[T]) uint64 {
	acc := h.size.Hash(len(s.prefix))
	for _, v := range s.prefix {
		acc = mix(acc, h.elem.Hash(v))
	}
	acc = mix(acc, h.size.Hash(len(s.cycle)))
	for _, v := range s.cycle {
		acc = mix(acc, h.elem.Hash(v))
	}
	return acc
}

func mix(acc, v uint64) uint64 {
	const prime = 0x100000001b3
	return (bits.RotateLeft64(acc, 31) ^ v) * prime
}

// Hash returns the hash of s under h; it is shorthand for h.Hash(s).
func (s Sequence[T]) Hash(h Hasher[T]) uint64 { return h.Hash(s) }
