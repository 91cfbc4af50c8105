package bignum

import "math"

// Value is implemented by Natural, Integer and Rational. It lets values of
// different types be ordered against each other.
type Value interface {
	// Rat returns the value as a Rational.
	Rat() Rational
}

// Rat returns x/1.
func (x Natural) Rat() Rational { return RationalFromNatural(x) }

// Rat returns x/1.
func (x Integer) Rat() Rational { return RationalFromInteger(x) }

// Rat returns x.
func (x Rational) Rat() Rational { return x }

// Compare orders x and y by numeric value across types and returns -1, 0
// or +1.
func Compare(x, y Value) int {
	switch a := x.(type) {
	case Natural:
		switch b := y.(type) {
		case Natural:
			return a.Cmp(b)
		case Integer:
			return IntegerFromNatural(a).Cmp(b)
		}
	case Integer:
		switch b := y.(type) {
		case Natural:
			return a.Cmp(IntegerFromNatural(b))
		case Integer:
			return a.Cmp(b)
		}
	}
	return x.Rat().Cmp(y.Rat())
}

// CompareFloat orders x against f. ok is false when f is NaN, which is
// unordered with respect to every value.
func CompareFloat(x Value, f float64) (cmp int, ok bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case math.IsInf(f, 1):
		return -1, true
	case math.IsInf(f, -1):
		return 1, true
	}
	r, _ := RationalFromFloat64(f)
	return x.Rat().Cmp(r), true
}
