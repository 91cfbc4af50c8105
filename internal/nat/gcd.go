package nat

import (
	"github.com/agbru/bignum/internal/arith"
	apperrors "github.com/agbru/bignum/internal/errors"
)

// GCD returns the greatest common divisor of x and y; GCD(0, 0) = 0.
func GCD(x, y Nat) Nat {
	return GCDWith(Auto, x, y)
}

// GCDWith is GCD with a forced algorithm.
func GCDWith(alg Algorithm, x, y Nat) Nat {
	n := min(len(x), len(y))
	if alg == Auto {
		alg = GCDBinary
		if n >= thresholds().GCDLehmer {
			alg = GCDLehmer
		}
	}
	observe(OpGCD, alg, n)
	switch {
	case len(x) == 0:
		return Clone(y)
	case len(y) == 0:
		return Clone(x)
	case len(x) == 1 && len(y) == 1:
		return Nat(nil).SetWord(gcdWord(x[0], y[0]))
	}
	switch alg {
	case GCDBinary:
		return binaryGCD(x, y)
	case GCDLehmer:
		if x.Cmp(y) < 0 {
			x, y = y, x
		}
		return lehmerGCD(x, y)
	}
	apperrors.Precondition("nat.GCD", apperrors.LengthMismatch, "unknown gcd algorithm %v", alg)
	return nil
}

// gcdWord is the binary GCD on single limbs.
func gcdWord(a, b Word) Word {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	k := arith.Ntz(a | b)
	a >>= arith.Ntz(a)
	for b != 0 {
		b >>= arith.Ntz(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << k
}

// binaryGCD removes the common power of two, then repeatedly subtracts the
// smaller odd value from the larger and strips the new trailing zeros.
func binaryGCD(x, y Nat) Nat {
	zx, zy := x.TrailingZeroBits(), y.TrailingZeroBits()
	k := min(zx, zy)
	u := Nat(nil).Shr(x, zx)
	v := Nat(nil).Shr(y, zy)
	for {
		switch c := u.Cmp(v); {
		case c == 0:
			return u.Shl(u, k)
		case c < 0:
			u, v = v, u
		}
		if len(u) == 1 {
			g := Nat(nil).SetWord(gcdWord(u[0], v[0]))
			return g.Shl(g, k)
		}
		u = u.Sub(u, v)
		u = u.Shr(u, u.TrailingZeroBits())
	}
}

// lehmerGCD runs Euclid's algorithm on a >= b, replacing runs of single-limb
// quotient steps by their cosequence computed from the leading limbs.
func lehmerGCD(a, b Nat) Nat {
	A, B := Clone(a), Clone(b)
	for len(B) > 1 {
		u0, u1, v0, v1, even := lehmerSimulate(A, B)
		if v0 != 0 {
			A, B = lehmerUpdate(A, B, u0, u1, v0, v1, even)
		} else {
			// No quotient could be simulated; take one full Euclid step.
			_, r := DivMod(A, B)
			A, B = B, r
		}
	}
	if len(B) == 0 {
		return A
	}
	r := ModW(A, B[0])
	return Nat(nil).SetWord(gcdWord(B[0], r))
}

// lehmerSimulate runs single-limb Euclid steps on the leading limbs of A
// and B until Collins' condition says the next quotient may differ from the
// multi-precision one. The cosequence signs alternate; even tracks them.
func lehmerSimulate(A, B Nat) (u0, u1, v0, v1 Word, even bool) {
	var a1, a2, u2, v2 Word

	m, n := len(B), len(A)
	h := arith.Nlz(A[n-1])
	a1 = A[n-1]<<h | A[n-2]>>(W-h)
	// B may have implicit zero limbs in the high bits if the lengths differ.
	switch {
	case n == m:
		a2 = B[n-1]<<h | B[n-2]>>(W-h)
	case n == m+1:
		a2 = B[n-2] >> (W - h)
	}

	u0, u1, u2 = 0, 1, 0
	v0, v1, v2 = 0, 0, 1
	for a2 >= v2 && a1-a2 >= v1+v2 {
		q, r := a1/a2, a1%a2
		a1, a2 = a2, r
		u0, u1, u2 = u1, u2, u1+q*u2
		v0, v1, v2 = v1, v2, v1+q*v2
		even = !even
	}
	return
}

// lehmerUpdate applies the simulated cosequence:
//
//	A' = ±u0*A ∓ v0*B
//	B' = ∓u1*A ± v1*B
//
// with the upper signs on even iterations.
func lehmerUpdate(A, B Nat, u0, u1, v0, v1 Word, even bool) (Nat, Nat) {
	a, b := SignedFrom(A), SignedFrom(B)
	ta := a.scaleWord(u0, !even).Add(b.scaleWord(v0, even))
	tb := a.scaleWord(u1, even).Add(b.scaleWord(v1, !even))
	if ta.Neg || tb.Neg {
		apperrors.Precondition("nat.lehmerUpdate", apperrors.InvalidRepresentation, "negative remainder")
	}
	return ta.Mag, tb.Mag
}

// scaleWord returns x*w, negated when neg is set.
func (x Signed) scaleWord(w Word, neg bool) Signed {
	return signed(neg != x.Neg, Nat(nil).MulAddWW(x.Mag, w, 0))
}

// ─────────────────────────────────────────────────────────────────────────────
// Extended GCD
// ─────────────────────────────────────────────────────────────────────────────

// ExtGCD returns g = gcd(x, y) and Bézout coefficients with a*x + b*y = g.
func ExtGCD(x, y Nat) (g Nat, a, b Signed) {
	oldR, r := Clone(x), Clone(y)
	oldS, s := SignedFrom(Nat{1}), Signed{}
	oldT, t := Signed{}, SignedFrom(Nat{1})
	for len(r) > 0 {
		q, rem := DivMod(oldR, r)
		oldR, r = r, rem
		qs := SignedFrom(q)
		oldS, s = s, oldS.Sub(qs.Mul(s))
		oldT, t = t, oldT.Sub(qs.Mul(t))
	}
	return oldR, oldS, oldT
}

// ModInverse returns the inverse of x modulo m and true, or false when
// gcd(x, m) != 1. m must be at least 2.
func ModInverse(x, m Nat) (Nat, bool) {
	_, xr := DivMod(x, m)
	g, a, _ := ExtGCD(xr, m)
	if len(g) != 1 || g[0] != 1 {
		return nil, false
	}
	if a.Neg {
		_, r := DivMod(a.Mag, m)
		if len(r) == 0 {
			return nil, true
		}
		return Nat(nil).Sub(m, r), true
	}
	_, r := DivMod(a.Mag, m)
	return r, true
}
