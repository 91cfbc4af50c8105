package bignum

import (
	"math"

	"github.com/holiman/uint256"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/nat"
)

// Machine-integer constraints accepted by the generic conversions.
type (
	Unsigned = arith.Unsigned
	Signed   = arith.Signed
	Integral = arith.Integral
)

// ─────────────────────────────────────────────────────────────────────────────
// Fixed-width integers
// ─────────────────────────────────────────────────────────────────────────────
//
// Each target width has three conversions: Checked reports false when the
// value does not fit, Wrapping reduces modulo 2^width (two's complement for
// signed targets) and Saturating clamps to the target's range.

// NaturalFrom returns v as a Natural, or false for negative v.
func NaturalFrom[T Integral](v T) (Natural, bool) {
	if v < 0 {
		return Natural{}, false
	}
	return NaturalFromUint64(uint64(v)), true
}

// NaturalToChecked returns x as a T, or false if it does not fit.
func NaturalToChecked[T Integral](x Natural) (T, bool) {
	w := arith.Width[T]()
	if arith.IsSigned[T]() {
		w--
	}
	if x.BitLen() > w {
		return 0, false
	}
	return T(x.Uint64()), true
}

// NaturalToWrapping returns x mod 2^width as a T.
func NaturalToWrapping[T Integral](x Natural) T {
	return T(x.Uint64())
}

// NaturalToSaturating returns x clamped to the largest T.
func NaturalToSaturating[T Integral](x Natural) T {
	if v, ok := NaturalToChecked[T](x); ok {
		return v
	}
	return arith.MaxOf[T]()
}

// IntegerFrom returns v as an Integer.
func IntegerFrom[T Integral](v T) Integer {
	if v < 0 {
		return integer(true, NaturalFromUint64(uint64(-(v+1))+1))
	}
	return integer(false, NaturalFromUint64(uint64(v)))
}

// IntegerToChecked returns x as a T, or false if it does not fit.
func IntegerToChecked[T Integral](x Integer) (T, bool) {
	if !x.neg {
		return NaturalToChecked[T](x.abs)
	}
	if !arith.IsSigned[T]() {
		return 0, false
	}
	w := arith.Width[T]()
	if x.abs.BitLen() > w {
		return 0, false
	}
	m := x.abs.Uint64()
	if m > uint64(1)<<(w-1) {
		return 0, false
	}
	return T(-m), true
}

// IntegerToWrapping returns x reduced modulo 2^width in two's complement.
func IntegerToWrapping[T Integral](x Integer) T {
	m := x.abs.Uint64()
	if x.neg {
		m = -m
	}
	return T(m)
}

// IntegerToSaturating returns x clamped to the range of T.
func IntegerToSaturating[T Integral](x Integer) T {
	if v, ok := IntegerToChecked[T](x); ok {
		return v
	}
	if x.neg {
		return arith.MinOf[T]()
	}
	return arith.MaxOf[T]()
}

// ─────────────────────────────────────────────────────────────────────────────
// 256-bit integers
// ─────────────────────────────────────────────────────────────────────────────

// NaturalFromUint256 returns u as a Natural.
func NaturalFromUint256(u *uint256.Int) Natural {
	z := make(nat.Nat, 0, 4*64/arith.W)
	for _, w := range u {
		z = appendUint64(z, w)
	}
	return natural(z)
}

func appendUint64(z nat.Nat, v uint64) nat.Nat {
	if arith.W == 64 {
		return append(z, Word(v))
	}
	return append(z, Word(v), Word(v>>32))
}

// low256 returns x mod 2^256.
func low256(x Natural) *uint256.Int {
	var u uint256.Int
	limbs := x.limbs()
	per := 64 / arith.W
	for i := range u {
		for j := 0; j < per; j++ {
			k := i*per + j
			if k < len(limbs) {
				u[i] |= uint64(limbs[k]) << (uint(j) * arith.W)
			}
		}
	}
	return &u
}

// Uint256 returns x as a uint256, or false if x >= 2^256.
func (x Natural) Uint256() (*uint256.Int, bool) {
	if x.BitLen() > 256 {
		return nil, false
	}
	return low256(x), true
}

// Uint256Wrapping returns x mod 2^256.
func (x Natural) Uint256Wrapping() *uint256.Int {
	return low256(x)
}

// Uint256Saturating returns x clamped to 2^256 - 1.
func (x Natural) Uint256Saturating() *uint256.Int {
	if x.BitLen() > 256 {
		return new(uint256.Int).SetAllOne()
	}
	return low256(x)
}

// IntegerFromInt256 interprets u as a two's complement signed 256-bit value.
func IntegerFromInt256(u *uint256.Int) Integer {
	if u.Sign() < 0 {
		return integer(true, NaturalFromUint256(new(uint256.Int).Neg(u)))
	}
	return IntegerFromNatural(NaturalFromUint256(u))
}

// Int256 returns x in two's complement, or false outside [-2^255, 2^255).
func (x Integer) Int256() (*uint256.Int, bool) {
	w := x.abs.BitLen()
	switch {
	case w <= 255:
	case x.neg && w == 256 && x.abs.TrailingZeros() == 255:
		// -2^255 is its own negation.
	default:
		return nil, false
	}
	return x.Int256Wrapping(), true
}

// Int256Wrapping returns x mod 2^256 in two's complement.
func (x Integer) Int256Wrapping() *uint256.Int {
	u := low256(x.abs)
	if x.neg {
		u.Neg(u)
	}
	return u
}

// ─────────────────────────────────────────────────────────────────────────────
// Floating point
// ─────────────────────────────────────────────────────────────────────────────

// NaturalFromFloat64 returns the integer value of f, or false if f is
// negative, not an integer, NaN or infinite.
func NaturalFromFloat64(f float64) (Natural, bool) {
	r, ok := RationalFromFloat64(f)
	if !ok || r.neg || !r.IsInteger() {
		return Natural{}, false
	}
	return r.num, true
}

// IntegerFromFloat64 returns the integer value of f, or false if f is not
// an integer, NaN or infinite.
func IntegerFromFloat64(f float64) (Integer, bool) {
	r, ok := RationalFromFloat64(f)
	if !ok || !r.IsInteger() {
		return Integer{}, false
	}
	return r.Numerator(), true
}

// RationalFromFloat64 returns the exact value of f, or false for NaN and
// infinities.
func RationalFromFloat64(f float64) (Rational, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, false
	}
	if f == 0 {
		return Rational{}, true
	}
	neg := f < 0
	frac, exp := math.Frexp(math.Abs(f))
	// frac in [0.5, 1): scale to a 53-bit integer mantissa.
	mant := uint64(math.Ldexp(frac, 53))
	exp -= 53
	m := NaturalFromUint64(mant)
	if exp >= 0 {
		return reduce(neg, m.Lsh(uint(exp)), one), true
	}
	return reduce(neg, m, one.Lsh(uint(-exp))), true
}

// Float64 returns the nearest float64 to x, ties to even. Values beyond
// the float64 range round to ±Inf.
func (x Rational) Float64() float64 {
	if x.num.IsZero() {
		return 0
	}
	a, b := x.num, x.Denominator()
	// Scale so the quotient carries 54 or 55 significant bits.
	shift := 54 - (a.BitLen() - b.BitLen())
	if shift >= 0 {
		a = a.Lsh(uint(shift))
	} else {
		b = b.Lsh(uint(-shift))
	}
	q, r, _ := a.DivMod(b)
	f := roundToFloat(q, !r.IsZero(), -shift)
	if x.neg {
		return -f
	}
	return f
}

// roundToFloat returns (q + sticky ε) * 2^exp rounded to 53 bits, ties to
// even. q must be nonzero.
func roundToFloat(q Natural, sticky bool, exp int) float64 {
	n := q.BitLen()
	extra := n - 53
	if extra <= 0 {
		return math.Ldexp(float64(q.Uint64()), exp)
	}
	mant := q.Rsh(uint(extra)).Uint64()
	half := q.Bit(uint(extra-1)) == 1
	rest := sticky || q.TrailingZeros() < uint(extra-1)
	if half && (rest || mant&1 == 1) {
		mant++
	}
	return math.Ldexp(float64(mant), exp+extra)
}

// Float64 returns the nearest float64 to x; huge values become +Inf.
func (x Natural) Float64() float64 {
	if x.IsZero() {
		return 0
	}
	return roundToFloat(x, false, 0)
}

// Float64Checked returns x as a float64, or false if x rounds beyond the
// largest finite float64.
func (x Natural) Float64Checked() (float64, bool) {
	f := x.Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float64Saturating returns x as a float64 clamped to math.MaxFloat64.
func (x Natural) Float64Saturating() float64 {
	if f, ok := x.Float64Checked(); ok {
		return f
	}
	return math.MaxFloat64
}

// Float64 returns the nearest float64 to x; huge values become ±Inf.
func (x Integer) Float64() float64 {
	f := x.abs.Float64()
	if x.neg {
		return -f
	}
	return f
}

// Float64Checked returns x as a float64, or false if it rounds to ±Inf.
func (x Integer) Float64Checked() (float64, bool) {
	f := x.Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float64Saturating returns x as a float64 clamped to ±math.MaxFloat64.
func (x Integer) Float64Saturating() float64 {
	if f, ok := x.Float64Checked(); ok {
		return f
	}
	if x.neg {
		return -math.MaxFloat64
	}
	return math.MaxFloat64
}
