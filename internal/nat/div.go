package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
)

// DivMod returns q = ⌊u/v⌋ and r = u - q*v. v must be nonzero; callers
// check and report division by zero before reaching this package.
func DivMod(u, v Nat) (q, r Nat) {
	return DivWith(Auto, u, v)
}

// DivWith is DivMod with a forced algorithm. DivSmall requires a one-limb
// divisor; the other algorithms accept any divisor.
func DivWith(alg Algorithm, u, v Nat) (q, r Nat) {
	if len(v) == 0 {
		apperrors.Precondition("nat.Div", apperrors.DivisionByZero, "zero divisor")
	}
	if alg == Auto {
		alg = selectDiv(len(u), len(v), thresholds())
	}
	observe(OpDiv, alg, len(v))
	if u.Cmp(v) < 0 {
		return nil, Clone(u)
	}
	return runDiv(alg, u, v)
}

// selectDiv picks the division algorithm for an m-limb dividend and an
// n-limb divisor.
func selectDiv(m, n int, t *config.Thresholds) Algorithm {
	switch {
	case n == 1:
		return DivSmall
	case n >= t.DivNewton && m-n >= t.DivNewtonQuotient:
		return DivNewton
	}
	return DivBasecase
}

func runDiv(alg Algorithm, u, v Nat) (q, r Nat) {
	switch alg {
	case DivSmall:
		if len(v) != 1 {
			apperrors.Precondition("nat.Div", apperrors.LengthMismatch, "single-limb division with %d-limb divisor", len(v))
		}
		q, rw := Nat(nil).DivW(u, v[0])
		return q, Nat(nil).SetWord(rw)
	case DivBasecase, DivNewton:
		if len(v) == 1 {
			q, rw := Nat(nil).DivW(u, v[0])
			return q, Nat(nil).SetWord(rw)
		}
		s := arith.Nlz(v[len(v)-1])
		vn := Nat(nil).Shl(v, s)
		un := Nat(nil).Make(len(u) + 1)
		un[len(u)] = arith.ShlVU(un[:len(u)], u, s)
		if alg == DivNewton {
			q, r = divRecip(un, vn)
		} else {
			q, r = divBasic(un, vn)
		}
		return q.Norm(), r.Shr(r, s)
	}
	apperrors.Precondition("nat.Div", apperrors.LengthMismatch, "unknown division algorithm %v", alg)
	return nil, nil
}

// DivW sets z = ⌊x/y⌋ and returns the remainder. y must be nonzero.
func (z Nat) DivW(x Nat, y Word) (q Nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		apperrors.Precondition("nat.DivW", apperrors.DivisionByZero, "zero divisor")
	case y == 1:
		return z.Set(x), 0
	case m == 0:
		return z[:0], 0
	}
	if alias(z, x) {
		z = nil
	}
	z = z.Make(m)
	r = arith.DivWVW(z, 0, x, y)
	return z.Norm(), r
}

// ModW returns x mod y. y must be nonzero.
func ModW(x Nat, y Word) Word {
	if y == 0 {
		apperrors.Precondition("nat.ModW", apperrors.DivisionByZero, "zero divisor")
	}
	return arith.ModVW(x, y)
}

// DivExact returns u/v for a nonzero v known to divide u. The quotient is
// built from the low limbs upward with the inverse of v's odd part, so no
// trial quotients or remainders are computed. The result is meaningless if
// v does not divide u.
func DivExact(u, v Nat) Nat {
	if len(v) == 0 {
		apperrors.Precondition("nat.DivExact", apperrors.DivisionByZero, "zero divisor")
	}
	if len(u) == 0 {
		return nil
	}
	tz := v.TrailingZeroBits()
	if tz > 0 {
		u = Nat(nil).Shr(u, tz)
		v = Nat(nil).Shr(v, tz)
	}
	if len(v) == 1 {
		return divExactWord(u, v[0])
	}
	n := len(v)
	if len(u) < n {
		return nil
	}
	r := Clone(u)
	q := make(Nat, len(u)-n+1)
	dinv := arith.InverseWord(v[0])
	for i := range q {
		qi := r[i] * dinv
		q[i] = qi
		hi := min(i+n, len(r))
		c := arith.SubMulVVW(r[i:hi], v[:hi-i], qi)
		if c != 0 && hi < len(r) {
			arith.SubVW(r[hi:], r[hi:], c)
		}
	}
	return q.Norm()
}

// DivExactWord returns x/d for a limb d known to divide x.
func DivExactWord(x Nat, d Word) Nat {
	return divExactWord(x, d)
}
