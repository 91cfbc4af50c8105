package nat

import apperrors "github.com/agbru/bignum/internal/errors"

// Toom-Cook multiplication.
//
// x is cut into k pieces and y into l pieces of s limbs each, turning the
// operands into polynomials X(t), Y(t) of degree k-1 and l-1 with
// x = X(B^s), y = Y(B^s). The product polynomial W = X*Y has degree
// D = k+l-2. It is evaluated at the D finite points 0, 1, -1, 2, -2, ...
// and at infinity, where W(∞) is the product of the leading pieces. The
// D remaining coefficients are recovered by Newton interpolation in which
// every division is exact, and x*y = W(B^s).

// toomShape returns the piece counts for a Toom algorithm.
func toomShape(alg Algorithm) (k, l int, ok bool) {
	switch alg {
	case Toom22:
		return 2, 2, true
	case Toom32:
		return 3, 2, true
	case Toom33:
		return 3, 3, true
	case Toom42:
		return 4, 2, true
	case Toom43:
		return 4, 3, true
	case Toom44:
		return 4, 4, true
	case Toom53:
		return 5, 3, true
	case Toom63:
		return 6, 3, true
	case Toom6H:
		return 6, 6, true
	case Toom8H:
		return 8, 8, true
	}
	return 0, 0, false
}

// toomPoints returns the first n finite evaluation points.
func toomPoints(n int) []int {
	pts := make([]int, n)
	for i := 1; i < n; i++ {
		v := (i + 1) / 2
		if i%2 == 0 {
			v = -v
		}
		pts[i] = v
	}
	return pts
}

// split cuts x into k pieces of s limbs, normalized; high pieces may be empty.
func split(x Nat, k, s int) []Nat {
	p := make([]Nat, k)
	for i := range p {
		lo := i * s
		if lo >= len(x) {
			break
		}
		p[i] = x[lo:min(lo+s, len(x))].Norm()
	}
	return p
}

// evaluate returns X(p) and X(-p) for p >= 0 from a single pass: the even
// and odd powers are accumulated separately by Horner's rule in p².
func evaluate(pieces []Nat, p int) (pos, neg Signed) {
	switch p {
	case 0:
		v := SignedFrom(pieces[0])
		return v, v
	}
	pp := Word(p * p)
	var even, odd Nat
	top := len(pieces) - 1
	for i := top - top%2; i >= 0; i -= 2 {
		even = Nat(nil).MulAddWW(even, pp, 0)
		even = even.Add(even, pieces[i])
	}
	for i := top - (top+1)%2; i >= 1; i -= 2 {
		odd = Nat(nil).MulAddWW(odd, pp, 0)
		odd = odd.Add(odd, pieces[i])
	}
	odd = Nat(nil).MulAddWW(odd, Word(p), 0)
	e, o := SignedFrom(even), SignedFrom(odd)
	return e.Add(o), e.Sub(o)
}

// toomMul sets z = x*y using k pieces for x and l pieces for y.
func toomMul(z, x, y Nat, k, l int) Nat {
	s := max((len(x)+k-1)/k, (len(y)+l-1)/l)
	xs, ys := split(x, k, s), split(y, l, s)
	d := k + l - 2

	vals := make([]Signed, d)
	pts := toomPoints(d)
	for i := 0; i < d; i++ {
		p := pts[i]
		if p < 0 {
			continue // filled together with -p
		}
		xp, xn := evaluate(xs, p)
		yp, yn := evaluate(ys, p)
		vals[i] = xp.Mul(yp)
		if i+1 < d && pts[i+1] == -p && p != 0 {
			vals[i+1] = xn.Mul(yn)
		}
	}
	inf := mul(nil, xs[k-1], ys[l-1])
	return toomRecombine(z, vals, pts, inf, s, len(x)+len(y))
}

// toomSqr sets z = x*x with k pieces.
func toomSqr(z, x Nat, k int) Nat {
	s := (len(x) + k - 1) / k
	xs := split(x, k, s)
	d := 2*k - 2

	vals := make([]Signed, d)
	pts := toomPoints(d)
	for i := 0; i < d; i++ {
		p := pts[i]
		if p < 0 {
			continue
		}
		xp, xn := evaluate(xs, p)
		vals[i] = SignedFrom(sqr(nil, xp.Mag))
		if i+1 < d && pts[i+1] == -p && p != 0 {
			vals[i+1] = SignedFrom(sqr(nil, xn.Mag))
		}
	}
	inf := sqr(nil, xs[k-1])
	return toomRecombine(z, vals, pts, inf, s, 2*len(x))
}

// toomRecombine interpolates the product polynomial from its values at pts
// and its leading coefficient inf, then evaluates it at B^s into z.
func toomRecombine(z Nat, vals []Signed, pts []int, inf Nat, s, size int) Nat {
	d := len(vals)
	lead := SignedFrom(inf)

	// Remove the leading term: the rest has degree d-1.
	for i, p := range pts {
		vals[i] = vals[i].Sub(lead.mulPow(p, d))
	}

	// Newton divided differences; every quotient is exact.
	for j := 1; j < d; j++ {
		for i := d - 1; i >= j; i-- {
			vals[i] = vals[i].Sub(vals[i-1]).divExactSmall(pts[i] - pts[i-j])
		}
	}

	// Newton form to monomial coefficients.
	coef := make([]Signed, d)
	coef[0] = vals[d-1]
	deg := 0
	for i := d - 2; i >= 0; i-- {
		// coef = coef*(t - pts[i]) + vals[i]
		deg++
		for c := deg; c >= 1; c-- {
			coef[c] = coef[c-1].Sub(coef[c].mulSmall(pts[i]))
		}
		coef[0] = coef[0].mulSmall(-pts[i]).Add(vals[i])
	}

	z = z.Make(size)
	clear(z)
	for i, c := range coef {
		if c.Neg {
			apperrors.Precondition("nat.toomRecombine", apperrors.InvalidRepresentation, "negative coefficient %d", i)
		}
		addAt(z, c.Mag, i*s)
	}
	addAt(z, inf, d*s)
	return z.Norm()
}

// mulPow returns x * p^e.
func (x Signed) mulPow(p, e int) Signed {
	if p == 0 {
		if e == 0 {
			return x
		}
		return Signed{}
	}
	for ; e > 0; e-- {
		x = x.mulSmall(p)
	}
	return x
}
