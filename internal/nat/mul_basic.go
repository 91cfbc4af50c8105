package nat

import "github.com/agbru/bignum/internal/arith"

// basicMul multiplies x and y and leaves the result in z.
// The (non-normalized) result is placed in z[0 : len(x) + len(y)].
func basicMul(z, x, y Nat) {
	clear(z[0 : len(x)+len(y)])
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = arith.AddMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// basicSqr sets z = x*x over z[0 : 2*len(x)]. Each cross product x[i]*x[j]
// with i < j is computed once, doubled by a shift and added to the squares
// on the diagonal.
func basicSqr(z, x Nat) {
	n := len(x)
	t := make(Nat, 2*n)
	z[1], z[0] = arith.MulWW(x[0], x[0])
	for i := 1; i < n; i++ {
		d := x[i]
		z[2*i+1], z[2*i] = arith.MulWW(d, d)
		t[2*i] = arith.AddMulVVW(t[i:2*i], x[0:i], d)
	}
	t[2*n-1] = arith.ShlVU(t[1:2*n-1], t[1:2*n-1], 1)
	arith.AddVV(z[:2*n], z[:2*n], t)
}

// mulChunked multiplies a long x by a much shorter y by cutting x into
// pieces of len(y) limbs, each multiplied as a balanced product.
func mulChunked(z, x, y Nat) Nat {
	n := len(y)
	z = z.Make(len(x) + n)
	clear(z)
	for i := 0; i < len(x); i += n {
		hi := min(i+n, len(x))
		piece := x[i:hi].Norm()
		if len(piece) == 0 {
			continue
		}
		p := mul(nil, piece, y)
		addAt(z, p, i)
	}
	return z.Norm()
}

// addAt adds x into z starting at limb offset i. z must be long enough to
// absorb every carry.
func addAt(z, x Nat, i int) {
	if len(x) == 0 {
		return
	}
	n := len(x)
	c := arith.AddVV(z[i:i+n], z[i:i+n], x)
	if c != 0 {
		j := i + n
		if j >= len(z) || arith.AddVW(z[j:], z[j:], c) != 0 {
			panicCarry()
		}
	}
}
