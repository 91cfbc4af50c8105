package bignum

import apperrors "github.com/agbru/bignum/internal/errors"

// Rational is an exact fraction kept in lowest terms with a positive
// denominator. The zero value is 0 (numerator 0, denominator 1).
type Rational struct {
	neg bool
	num Natural
	// den is the denominator; the zero Natural stands for 1 so that the
	// zero value of Rational is valid.
	den Natural
}

var one = NaturalFromWord(1)

// reduce builds a canonical Rational from a sign, numerator and nonzero
// denominator. It is the only way a Rational is produced.
func reduce(neg bool, num, den Natural) Rational {
	if num.IsZero() {
		return Rational{}
	}
	if g := num.GCD(den); g.Cmp(one) != 0 {
		num, _ = num.DivExact(g)
		den, _ = den.DivExact(g)
	}
	if den.Cmp(one) == 0 {
		den = Natural{}
	}
	return Rational{neg: neg, num: num, den: den}
}

// NewRational returns num/den in lowest terms. It fails with
// ErrInvalidDenominator when den is zero.
func NewRational(num, den Integer) (Rational, error) {
	if den.IsZero() {
		return Rational{}, apperrors.New("NewRational", apperrors.InvalidDenominator)
	}
	return reduce(num.neg != den.neg, num.abs, den.abs), nil
}

// RationalFromFrac64 returns num/den for machine integers.
func RationalFromFrac64(num, den int64) (Rational, error) {
	return NewRational(IntegerFromInt64(num), IntegerFromInt64(den))
}

// RationalFromInteger returns x/1.
func RationalFromInteger(x Integer) Rational {
	return Rational{neg: x.neg, num: x.abs}
}

// RationalFromNatural returns x/1.
func RationalFromNatural(x Natural) Rational {
	return Rational{num: x}
}

// Numerator returns the signed numerator.
func (x Rational) Numerator() Integer {
	return integer(x.neg, x.num)
}

// Denominator returns the denominator, always positive.
func (x Rational) Denominator() Natural {
	if x.den.IsZero() {
		return one
	}
	return x.den
}

// Valid reports whether x is in canonical form: lowest terms, positive
// denominator and an unsigned zero.
func (x Rational) Valid() bool {
	if !x.num.Valid() || !x.den.Valid() {
		return false
	}
	if x.num.IsZero() {
		return !x.neg && x.den.IsZero()
	}
	if x.den.Cmp(one) == 0 {
		return false
	}
	return x.num.GCD(x.Denominator()).Cmp(one) == 0
}

// Sign returns -1, 0 or +1.
func (x Rational) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.num.IsZero():
		return 0
	}
	return 1
}

// IsInteger reports whether the denominator is 1.
func (x Rational) IsInteger() bool { return x.den.IsZero() }

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Neg returns -x.
func (x Rational) Neg() Rational {
	x.neg = !x.neg && !x.num.IsZero()
	return x
}

// Abs returns |x|.
func (x Rational) Abs() Rational {
	x.neg = false
	return x
}

// Inv returns 1/x; it fails with ErrDivisionByZero for x == 0.
func (x Rational) Inv() (Rational, error) {
	if x.num.IsZero() {
		return Rational{}, errDivByZero("Rational.Inv")
	}
	return reduce(x.neg, x.Denominator(), x.num), nil
}

// Add returns x + y.
func (x Rational) Add(y Rational) Rational {
	a := x.Numerator().Mul(IntegerFromNatural(y.Denominator()))
	b := y.Numerator().Mul(IntegerFromNatural(x.Denominator()))
	s := a.Add(b)
	return reduce(s.neg, s.abs, x.Denominator().Mul(y.Denominator()))
}

// Sub returns x - y.
func (x Rational) Sub(y Rational) Rational {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Rational) Mul(y Rational) Rational {
	return reduce(x.neg != y.neg, x.num.Mul(y.num), x.Denominator().Mul(y.Denominator()))
}

// Quo returns x / y; it fails with ErrDivisionByZero for y == 0.
func (x Rational) Quo(y Rational) (Rational, error) {
	if y.num.IsZero() {
		return Rational{}, errDivByZero("Rational.Quo")
	}
	return reduce(x.neg != y.neg, x.num.Mul(y.Denominator()), x.Denominator().Mul(y.num)), nil
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Rational) Cmp(y Rational) int {
	if sx, sy := x.Sign(), y.Sign(); sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	a := x.num.Mul(y.Denominator())
	b := y.num.Mul(x.Denominator())
	if x.neg {
		return b.Cmp(a)
	}
	return a.Cmp(b)
}

// Equal reports whether x == y.
func (x Rational) Equal(y Rational) bool {
	return x.neg == y.neg && x.num.Equal(y.num) && x.den.Equal(y.den)
}

// ─────────────────────────────────────────────────────────────────────────────
// Rounding to integers
// ─────────────────────────────────────────────────────────────────────────────

// Truncate returns x rounded toward zero.
func (x Rational) Truncate() Integer {
	q, _, _ := x.num.DivMod(x.Denominator())
	return integer(x.neg, q)
}

// Floor returns the greatest integer <= x.
func (x Rational) Floor() Integer {
	// Euclidean division by a positive divisor rounds toward -∞.
	q, _ := x.Numerator().Div(IntegerFromNatural(x.Denominator()))
	return q
}

// Ceil returns the least integer >= x.
func (x Rational) Ceil() Integer {
	f := x.Floor()
	if x.IsInteger() {
		return f
	}
	return f.Add(IntegerFromInt64(1))
}
