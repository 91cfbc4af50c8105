package nat

import "github.com/agbru/bignum/internal/arith"

// divBasic performs Knuth's long division of u by v. v must be normalized
// (top bit set) with at least two limbs, and u must carry one extra limb so
// that its top limb is below v's. It returns the quotient and the
// unnormalized-shift remainder; both are fresh.
//
// Trial quotients come from the top two limbs of the running remainder,
// divided with the precomputed reciprocal of v's top limb, and are refined
// against v's second limb before the multiply-subtract. The add-back loop
// runs at most once in practice.
func divBasic(u, v Nat) (q, r Nat) {
	n := len(v)
	m := len(u) - n - 1
	un := Nat(nil).Set(u)
	q = make(Nat, m+1)
	qv := make(Nat, n+1)

	vn1, vn2 := v[n-1], v[n-2]
	rec := arith.ReciprocalWord(vn1)
	for j := m; j >= 0; j-- {
		qhat := M
		if ujn := un[j+n]; ujn != vn1 {
			var rhat Word
			qhat, rhat = arith.DivWW(ujn, un[j+n-1], vn1, rec)
			x1, x0 := arith.MulWW(qhat, vn2)
			for x1 > rhat || (x1 == rhat && x0 > un[j+n-2]) {
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev {
					break
				}
				x1, x0 = arith.MulWW(qhat, vn2)
			}
		}

		qv[n] = arith.MulAddVWW(qv[:n], v, qhat, 0)
		c := arith.SubVV(un[j:j+n+1], un[j:j+n+1], qv)
		for c != 0 {
			c2 := arith.AddVV(un[j:j+n], un[j:j+n], v)
			un[j+n] += c2
			if c2 != 0 && un[j+n] == 0 {
				c = 0
			}
			qhat--
		}
		q[j] = qhat
	}
	return q, un[:n].Norm()
}
