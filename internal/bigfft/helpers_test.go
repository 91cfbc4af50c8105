package bigfft

import (
	"math/big"
	"math/rand/v2"

	"github.com/agbru/bignum/internal/arith"
)

// refMul is the pointwise multiplier used by tests; it goes through
// math/big so the transform is checked against an independent product.
func refMul(x, y []arith.Word) []arith.Word {
	return fromBig(new(big.Int).Mul(toBig(x), toBig(y)))
}

func toBig(x []arith.Word) *big.Int {
	words := make([]big.Word, len(x))
	for i, w := range x {
		words[i] = big.Word(w)
	}
	return new(big.Int).SetBits(words)
}

func fromBig(x *big.Int) []arith.Word {
	bits := x.Bits()
	if len(bits) == 0 {
		return nil
	}
	z := make([]arith.Word, len(bits))
	for i, w := range bits {
		z[i] = arith.Word(w)
	}
	return z
}

func randomNat(r *rand.Rand, n int) []arith.Word {
	if n == 0 {
		return nil
	}
	z := make([]arith.Word, n)
	for i := range z {
		z[i] = arith.Word(r.Uint64())
	}
	if z[n-1] == 0 {
		z[n-1] = 1
	}
	return z
}
