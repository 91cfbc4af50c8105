//go:build gmp

// This file provides the GMP oracle, compiled only with the "gmp" build tag
// because it links against libgmp through cgo.

package oracle

import (
	"github.com/ncw/gmp"

	"github.com/agbru/bignum/internal/nat"
)

func init() {
	register(GMP{})
}

// GMP is the Oracle backed by libgmp. It is the stronger reference because
// it shares no code or algorithm choices with math/big.
type GMP struct{}

// Name returns "gmp".
func (GMP) Name() string { return "gmp" }

// Mul returns x*y.
func (GMP) Mul(x, y nat.Nat) nat.Nat {
	return fromGMP(new(gmp.Int).Mul(toGMP(x), toGMP(y)))
}

// DivMod returns the quotient and remainder of x/y.
func (GMP) DivMod(x, y nat.Nat) (q, r nat.Nat) {
	gq, gr := new(gmp.Int).QuoRem(toGMP(x), toGMP(y), new(gmp.Int))
	return fromGMP(gq), fromGMP(gr)
}

// GCD returns gcd(x, y).
func (GMP) GCD(x, y nat.Nat) nat.Nat {
	return fromGMP(new(gmp.Int).GCD(nil, nil, toGMP(x), toGMP(y)))
}

func toGMP(x nat.Nat) *gmp.Int {
	return new(gmp.Int).SetBytes(toBytes(x))
}

func fromGMP(g *gmp.Int) nat.Nat {
	return fromBytes(g.Bytes())
}
