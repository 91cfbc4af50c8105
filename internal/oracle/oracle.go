//go:generate mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks

// Package oracle cross-checks the limb engine against independent
// arbitrary-precision implementations.
package oracle

import (
	"math/big"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/nat"
)

// Oracle computes reference results for normalized operands.
type Oracle interface {
	// Name identifies the implementation in mismatch reports.
	Name() string
	// Mul returns x*y.
	Mul(x, y nat.Nat) nat.Nat
	// DivMod returns ⌊x/y⌋ and x mod y for nonzero y.
	DivMod(x, y nat.Nat) (q, r nat.Nat)
	// GCD returns the greatest common divisor of x and y.
	GCD(x, y nat.Nat) nat.Nat
}

// ─────────────────────────────────────────────────────────────────────────────
// math/big Oracle
// ─────────────────────────────────────────────────────────────────────────────

// Big is the Oracle backed by math/big.
type Big struct{}

// Name returns "math/big".
func (Big) Name() string { return "math/big" }

// Mul returns x*y.
func (Big) Mul(x, y nat.Nat) nat.Nat {
	return FromBig(new(big.Int).Mul(ToBig(x), ToBig(y)))
}

// DivMod returns the quotient and remainder of x/y.
func (Big) DivMod(x, y nat.Nat) (q, r nat.Nat) {
	bq, br := new(big.Int).QuoRem(ToBig(x), ToBig(y), new(big.Int))
	return FromBig(bq), FromBig(br)
}

// GCD returns gcd(x, y).
func (Big) GCD(x, y nat.Nat) nat.Nat {
	return FromBig(new(big.Int).GCD(nil, nil, ToBig(x), ToBig(y)))
}

// ToBig converts x to a big.Int. Both use little-endian machine words.
func ToBig(x nat.Nat) *big.Int {
	ws := make([]big.Word, len(x))
	for i, w := range x {
		ws[i] = big.Word(w)
	}
	return new(big.Int).SetBits(ws)
}

// FromBig converts a nonnegative big.Int to a normalized Nat.
func FromBig(b *big.Int) nat.Nat {
	ws := b.Bits()
	z := make(nat.Nat, len(ws))
	for i, w := range ws {
		z[i] = arith.Word(w)
	}
	return z.Norm()
}

// toBytes returns x as big-endian bytes, the exchange format of libgmp.
func toBytes(x nat.Nat) []byte {
	const size = arith.W / 8
	buf := make([]byte, len(x)*size)
	for i, w := range x {
		for j := range size {
			buf[len(buf)-1-i*size-j] = byte(w >> (8 * j))
		}
	}
	return buf
}

// fromBytes is the inverse of toBytes; leading zero bytes are allowed.
func fromBytes(buf []byte) nat.Nat {
	const size = arith.W / 8
	z := make(nat.Nat, (len(buf)+size-1)/size)
	for k := range buf {
		b := buf[len(buf)-1-k]
		z[k/size] |= arith.Word(b) << (8 * (k % size))
	}
	return z.Norm()
}
