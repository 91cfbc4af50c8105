// Package arith provides the word-level and limb-vector primitives of the
// multi-precision engine: carry/borrow-propagating add and subtract, shifts,
// single-limb multiply-accumulate and comparison over little-endian limb
// slices.
//
// Length preconditions are checked on entry. Callers inside this module
// always dispatch with consistent lengths, so a violation is a library defect
// and panics with an apperrors.PreconditionError.
package arith

import (
	"math/bits"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// Word is a single limb of a multi-precision number.
type Word uint

const (
	// W is the limb width in bits.
	W = bits.UintSize
	// M is the largest limb value.
	M = ^Word(0)
)

// ─────────────────────────────────────────────────────────────────────────────
// Elementary operations on words
// ─────────────────────────────────────────────────────────────────────────────

// MulWW returns the double-width product x*y as hi<<W + lo.
func MulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	return Word(h), Word(l)
}

// MulAddWWW returns x*y + c as hi<<W + lo.
func MulAddWWW(x, y, c Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	var cc uint
	l, cc = bits.Add(l, uint(c), 0)
	return Word(h + cc), Word(l)
}

// Nlz returns the number of leading zero bits of x.
func Nlz(x Word) uint {
	return uint(bits.LeadingZeros(uint(x)))
}

// Ntz returns the number of trailing zero bits of x (W for x == 0).
func Ntz(x Word) uint {
	return uint(bits.TrailingZeros(uint(x)))
}

// BitLen returns the number of significant bits of x.
func BitLen(x Word) int {
	return bits.Len(uint(x))
}

// ─────────────────────────────────────────────────────────────────────────────
// Vector operations
// ─────────────────────────────────────────────────────────────────────────────

func checkLen(op string, z int, others ...int) {
	for _, n := range others {
		if n < z {
			apperrors.Precondition(op, apperrors.LengthMismatch, "operand of length %d shorter than destination of length %d", n, z)
		}
	}
}

// AddVV computes z = x + y over len(z) limbs and returns the carry (0 or 1).
// x and y must be at least as long as z.
func AddVV(z, x, y []Word) (c Word) {
	checkLen("AddVV", len(z), len(x), len(y))
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// SubVV computes z = x - y over len(z) limbs and returns the borrow (0 or 1).
// x and y must be at least as long as z.
func SubVV(z, x, y []Word) (c Word) {
	checkLen("SubVV", len(z), len(x), len(y))
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		zi, cc := bits.Sub(uint(x[i]), uint(y[i]), uint(c))
		z[i] = Word(zi)
		c = Word(cc)
	}
	return
}

// AddVW computes z = x + y for a single limb y and returns the carry.
func AddVW(z, x []Word, y Word) (c Word) {
	checkLen("AddVW", len(z), len(x))
	c = y
	i := 0
	for ; i < len(z) && i < len(x) && c != 0; i++ {
		zi, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	copy(z[i:], x[i:len(z)])
	return
}

// SubVW computes z = x - y for a single limb y and returns the borrow.
func SubVW(z, x []Word, y Word) (c Word) {
	checkLen("SubVW", len(z), len(x))
	c = y
	i := 0
	for ; i < len(z) && i < len(x) && c != 0; i++ {
		zi, cc := bits.Sub(uint(x[i]), uint(c), 0)
		z[i] = Word(zi)
		c = Word(cc)
	}
	copy(z[i:], x[i:len(z)])
	return
}

// ShlVU computes z = x << s for 0 <= s < W and returns the bits shifted out
// of the top limb. z and x may alias.
func ShlVU(z, x []Word, s uint) (c Word) {
	checkLen("ShlVU", len(z), len(x))
	if s >= W {
		apperrors.Precondition("ShlVU", apperrors.LengthMismatch, "shift %d out of range", s)
	}
	if len(z) == 0 {
		return
	}
	if s == 0 {
		copy(z, x)
		return
	}
	ŝ := W - s
	c = x[len(z)-1] >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return
}

// ShrVU computes z = x >> s for 0 <= s < W and returns the bits shifted out
// of the bottom limb, left-aligned. z and x may alias.
func ShrVU(z, x []Word, s uint) (c Word) {
	checkLen("ShrVU", len(z), len(x))
	if s >= W {
		apperrors.Precondition("ShrVU", apperrors.LengthMismatch, "shift %d out of range", s)
	}
	if len(z) == 0 {
		return
	}
	if s == 0 {
		copy(z, x)
		return
	}
	ŝ := W - s
	c = x[0] << ŝ
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return
}

// MulAddVWW computes z = x*y + r and returns the high limb.
func MulAddVWW(z, x []Word, y, r Word) (c Word) {
	checkLen("MulAddVWW", len(z), len(x))
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = MulAddWWW(x[i], y, c)
	}
	return
}

// AddMulVVW computes z += x*y and returns the carry limb.
func AddMulVVW(z, x []Word, y Word) (c Word) {
	checkLen("AddMulVVW", len(z), len(x))
	for i := 0; i < len(z) && i < len(x); i++ {
		z1, z0 := MulAddWWW(x[i], y, z[i])
		lo, cc := bits.Add(uint(z0), uint(c), 0)
		c, z[i] = Word(cc), Word(lo)
		c += z1
	}
	return
}

// SubMulVVW computes z -= x*y and returns the borrow limb.
func SubMulVVW(z, x []Word, y Word) (c Word) {
	checkLen("SubMulVVW", len(z), len(x))
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := bits.Mul(uint(x[i]), uint(y))
		lo, cc := bits.Add(lo, uint(c), 0)
		hi += cc
		zi, b := bits.Sub(uint(z[i]), lo, 0)
		z[i] = Word(zi)
		c = Word(hi + b)
	}
	return
}

// Cmp compares two limb vectors of equal length as unsigned numbers and
// returns -1, 0 or +1.
func Cmp(x, y []Word) int {
	if len(x) != len(y) {
		apperrors.Precondition("Cmp", apperrors.LengthMismatch, "len(x)=%d != len(y)=%d", len(x), len(y))
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
