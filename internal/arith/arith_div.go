package arith

import (
	"math/bits"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Division by a single limb
// ─────────────────────────────────────────────────────────────────────────────

// ReciprocalWord returns ⌊(B²-1)/d⌋ - B for the normalized form d of d1,
// where B = 2^W. The reciprocal replaces the hardware division in DivWW.
func ReciprocalWord(d1 Word) Word {
	u := uint(d1 << Nlz(d1))
	x1 := ^u
	x0 := uint(M)
	rec, _ := bits.Div(x1, x0, u) // (B²-1)/u - B = (B*(M-u)+M)/u
	return Word(rec)
}

// DivWW returns q = ⌊(x1<<W + x0)/y⌋ and r = (x1<<W + x0) mod y, where
// m = ReciprocalWord(y). Requires x1 < y.
func DivWW(x1, x0, y, m Word) (q, r Word) {
	if x1 >= y {
		apperrors.Precondition("DivWW", apperrors.LengthMismatch, "high limb %#x not below divisor %#x", x1, y)
	}
	s := Nlz(y)
	if s != 0 {
		x1 = x1<<s | x0>>(W-s)
		x0 <<= s
		y <<= s
	}
	d := uint(y)
	// t1 = ⌊(x1*m + x1*B + x0)/B⌋ underestimates the quotient by at most two.
	t1, t0 := bits.Mul(uint(m), uint(x1))
	_, c := bits.Add(t0, uint(x0), 0)
	t1, _ = bits.Add(t1, uint(x1), c)
	qq := t1
	dq1, dq0 := bits.Mul(d, qq)
	r0, b := bits.Sub(uint(x0), dq0, 0)
	r1, _ := bits.Sub(uint(x1), dq1, b)
	if r1 != 0 {
		qq++
		r0 -= d
	}
	if r0 >= d {
		qq++
		r0 -= d
	}
	return Word(qq), Word(r0 >> s)
}

// DivWVW computes z = (xn<<(W*len(x)) + x) / y and returns the remainder.
// Requires xn < y and len(z) == len(x).
func DivWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	if len(z) != len(x) {
		apperrors.Precondition("DivWVW", apperrors.LengthMismatch, "len(z)=%d != len(x)=%d", len(z), len(x))
	}
	r = xn
	if len(x) == 1 {
		qq, rr := bits.Div(uint(r), uint(x[0]), uint(y))
		z[0] = Word(qq)
		return Word(rr)
	}
	rec := ReciprocalWord(y)
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = DivWW(r, x[i], y, rec)
	}
	return r
}

// ModVW returns x mod y without materialising the quotient.
func ModVW(x []Word, y Word) (r Word) {
	rec := ReciprocalWord(y)
	for i := len(x) - 1; i >= 0; i-- {
		_, r = DivWW(r, x[i], y, rec)
	}
	return r
}

// ─────────────────────────────────────────────────────────────────────────────
// Exact division by a small constant
// ─────────────────────────────────────────────────────────────────────────────

// InverseWord returns the multiplicative inverse of the odd limb d modulo 2^W.
func InverseWord(d Word) Word {
	if d&1 == 0 {
		apperrors.Precondition("InverseWord", apperrors.LengthMismatch, "even divisor %d has no inverse", d)
	}
	// Newton–Hensel lifting doubles the number of correct low bits per step;
	// d itself is correct to 3 bits since d*d ≡ 1 (mod 8).
	inv := d
	for i := 3; i < W; i *= 2 {
		inv *= 2 - d*inv
	}
	return inv
}

// DivExactVW computes z = x / d for an odd limb d that is known to divide x
// exactly, using the modular inverse of d and a running borrow instead of
// division. It returns the final borrow, which is zero exactly when the
// precondition held.
func DivExactVW(z, x []Word, d, dinv Word) (c Word) {
	checkLen("DivExactVW", len(z), len(x))
	for i := 0; i < len(z) && i < len(x); i++ {
		t, b := bits.Sub(uint(x[i]), uint(c), 0)
		q := Word(t) * dinv
		z[i] = q
		hi, _ := bits.Mul(uint(q), uint(d))
		c = Word(hi + b)
	}
	return
}

// inverse3 is the inverse of 3 modulo 2^W (0xAAAA…AB).
const inverse3 = M/3*2 + 1

// DivExactBy3 computes z = x / 3 for x known to be a multiple of 3. The borrow
// limb of x - 3q is q*3's high word, which is 0, 1 or 2 depending only on the
// range q falls into, so no multiplication by 3 is needed.
func DivExactBy3(z, x []Word) (c Word) {
	checkLen("DivExactBy3", len(z), len(x))
	const third = M / 3
	for i := 0; i < len(z) && i < len(x); i++ {
		t, b := bits.Sub(uint(x[i]), uint(c), 0)
		q := Word(t) * inverse3
		z[i] = q
		c = Word(b)
		if q > third {
			c++
		}
		if q > 2*third {
			c++
		}
	}
	return
}
