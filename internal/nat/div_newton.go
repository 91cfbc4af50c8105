package nat

import "github.com/agbru/bignum/internal/arith"

// recipBase is the divisor length below which the reciprocal is computed
// by long division instead of Newton iteration.
const recipBase = 8

// recip returns ⌊B^(2n)/v⌋ for a normalized n-limb v, B = 2^W.
//
// The reciprocal of the top half of v, scaled up, is correct to about half
// the limbs; one Newton step X += X(B^(2n) - vX)/B^(2n) at full precision
// doubles that, and a final correction loop makes the result exact.
func recip(v Nat) Nat {
	n := len(v)
	pow := make(Nat, 2*n+1)
	pow[2*n] = 1
	if n < recipBase {
		if n == 1 {
			q, _ := Nat(nil).DivW(pow, v[0])
			return q
		}
		q, _ := divBasic(append(pow, 0), v)
		return q.Norm()
	}

	h := n/2 + 1
	xh := recip(v[n-h:])
	x := Nat(nil).Shl(xh, uint(n-h)*W)

	e := SignedFrom(pow).Sub(SignedFrom(mul(nil, v, x)))
	t := mul(nil, x, e.Mag).High(2 * n)
	if e.Neg {
		x = x.Sub(x, t)
	} else {
		x = x.Add(x, t)
	}

	r := SignedFrom(pow).Sub(SignedFrom(mul(nil, v, x)))
	sv := SignedFrom(v)
	for r.Neg {
		x = x.SubWord(x, 1)
		r = r.Add(sv)
	}
	for r.Mag.Cmp(v) >= 0 {
		x = x.AddWord(x, 1)
		r = r.Sub(sv)
	}
	return x
}

// divRecip divides u by the normalized v using its reciprocal. u is consumed
// from the top in v-sized blocks; each block quotient is the top half of
// block*X and is off by at most two, fixed by comparing the remainder with v.
// u's top limb must be below v's top limb.
func divRecip(u, v Nat) (q, r Nat) {
	n := len(v)
	x := recip(v)

	blocks := (len(u) + n - 1) / n
	q = make(Nat, blocks*n)
	var cur Nat
	sv := SignedFrom(v)
	for b := blocks - 1; b >= 0; b-- {
		lo := b * n
		chunk := u[lo:min(lo+n, len(u))].Norm()

		// a = cur*B^n + chunk < v*B^n
		a := Nat(nil).Shl(cur, uint(n)*W)
		a = a.Add(a, chunk)

		qb := mul(nil, a, x).High(2 * n)
		rem := SignedFrom(a).Sub(SignedFrom(mul(nil, qb, v)))
		for rem.Neg {
			qb = qb.SubWord(qb, 1)
			rem = rem.Add(sv)
		}
		for rem.Mag.Cmp(v) >= 0 {
			qb = qb.AddWord(qb, 1)
			rem = rem.Sub(sv)
		}
		copy(q[lo:lo+n], qb)
		cur = rem.Mag
	}
	return q.Norm(), Nat(nil).Set(cur)
}

// Reciprocal exposes recip for tests and the calibration harness.
func Reciprocal(v Nat) Nat {
	s := arith.Nlz(v[len(v)-1])
	return recip(Nat(nil).Shl(v, s))
}
