package nat

import (
	"github.com/agbru/bignum/internal/arith"
	apperrors "github.com/agbru/bignum/internal/errors"
)

// Signed is a sign-magnitude value used for Toom evaluation points and GCD
// cofactors. Zero is always non-negative.
type Signed struct {
	Neg bool
	Mag Nat
}

func signed(neg bool, mag Nat) Signed {
	mag = mag.Norm()
	return Signed{Neg: neg && len(mag) > 0, Mag: mag}
}

// SignedFrom returns the non-negative value x.
func SignedFrom(x Nat) Signed { return Signed{Mag: x} }

// Cmp compares x and y.
func (x Signed) Cmp(y Signed) int {
	switch {
	case x.Neg && !y.Neg:
		return -1
	case !x.Neg && y.Neg:
		return 1
	case x.Neg:
		return y.Mag.Cmp(x.Mag)
	}
	return x.Mag.Cmp(y.Mag)
}

// Add returns x + y.
func (x Signed) Add(y Signed) Signed {
	if x.Neg == y.Neg {
		return signed(x.Neg, Nat(nil).Add(x.Mag, y.Mag))
	}
	if x.Mag.Cmp(y.Mag) >= 0 {
		return signed(x.Neg, Nat(nil).Sub(x.Mag, y.Mag))
	}
	return signed(y.Neg, Nat(nil).Sub(y.Mag, x.Mag))
}

// Sub returns x - y.
func (x Signed) Sub(y Signed) Signed {
	return x.Add(y.Negate())
}

// Negate returns -x.
func (x Signed) Negate() Signed {
	return signed(!x.Neg, x.Mag)
}

// Mul returns x * y.
func (x Signed) Mul(y Signed) Signed {
	return signed(x.Neg != y.Neg, mul(nil, x.Mag, y.Mag))
}

// mulSmall returns x * d for a small signed d.
func (x Signed) mulSmall(d int) Signed {
	neg := x.Neg
	if d < 0 {
		neg = !neg
		d = -d
	}
	return signed(neg, Nat(nil).MulAddWW(x.Mag, Word(d), 0))
}

// divExactSmall returns x / d for a small nonzero d that divides x.
func (x Signed) divExactSmall(d int) Signed {
	neg := x.Neg
	if d < 0 {
		neg = !neg
		d = -d
	}
	return signed(neg, divExactWord(x.Mag, Word(d)))
}

// divExactWord returns x / d for a limb d known to divide x. The power of two
// is shifted out first; the odd part is removed with a modular inverse.
func divExactWord(x Nat, d Word) Nat {
	if d == 0 {
		apperrors.Precondition("nat.divExactWord", apperrors.DivisionByZero, "zero divisor")
	}
	if len(x) == 0 {
		return nil
	}
	tz := arith.Ntz(d)
	z := Nat(nil).Shr(x, tz)
	d >>= tz
	switch d {
	case 1:
		return z
	case 3:
		arith.DivExactBy3(z, z)
	default:
		arith.DivExactVW(z, z, d, arith.InverseWord(d))
	}
	return z.Norm()
}
