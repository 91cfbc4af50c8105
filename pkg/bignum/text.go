package bignum

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/nat"
)

// ─────────────────────────────────────────────────────────────────────────────
// Rendering
// ─────────────────────────────────────────────────────────────────────────────

// String returns x in decimal.
func (x Natural) String() string { return x.Text(10) }

// Text returns x in the given base, 2 <= base <= 36.
func (x Natural) Text(base int) string {
	return x.limbs().Text(base)
}

// String returns x in decimal with a leading '-' when negative.
func (x Integer) String() string { return x.Text(10) }

// Text returns x in the given base with a leading '-' when negative.
func (x Integer) Text(base int) string {
	if x.neg {
		return "-" + x.abs.Text(base)
	}
	return x.abs.Text(base)
}

// String returns "n/d", or just the integer when the denominator is 1.
func (x Rational) String() string {
	n := x.Numerator().String()
	if x.IsInteger() {
		return n
	}
	return n + "/" + x.den.String()
}

// Format implements fmt.Formatter: %d %s %v in decimal, %b %o %x %X in the
// respective base. Width and the '-', '0' and '+' flags are honoured.
func (x Natural) Format(s fmt.State, verb rune) { format(s, verb, false, x.Text) }

// Format implements fmt.Formatter like Natural.Format.
func (x Integer) Format(s fmt.State, verb rune) { format(s, verb, x.neg, x.abs.Text) }

// Format implements fmt.Formatter. Only %s, %v and %d are supported; all
// render "n/d".
func (x Rational) Format(s fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'd':
		pad(s, x.String())
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Rational=%s)", verb, x.String())
	}
}

func format(s fmt.State, verb rune, neg bool, text func(int) string) {
	var base int
	switch verb {
	case 'd', 's', 'v':
		base = 10
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'x', 'X':
		base = 16
	default:
		fmt.Fprintf(s, "%%!%c(bignum=%s)", verb, text(10))
		return
	}
	digits := text(base)
	if verb == 'X' {
		digits = strings.ToUpper(digits)
	}
	sign := ""
	switch {
	case neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	}
	if w, ok := s.Width(); ok && s.Flag('0') && !s.Flag('-') {
		if n := w - len(sign) - len(digits); n > 0 {
			digits = strings.Repeat("0", n) + digits
		}
	}
	pad(s, sign+digits)
}

func pad(s fmt.State, str string) {
	w, ok := s.Width()
	if !ok || len(str) >= w {
		fmt.Fprint(s, str)
		return
	}
	fill := strings.Repeat(" ", w-len(str))
	if s.Flag('-') {
		fmt.Fprint(s, str, fill)
		return
	}
	fmt.Fprint(s, fill, str)
}

// ─────────────────────────────────────────────────────────────────────────────
// Parsing
// ─────────────────────────────────────────────────────────────────────────────

// ParseNatural parses a decimal Natural with an optional leading '+'.
func ParseNatural(s string) (Natural, error) {
	return ParseNaturalBase(s, 10)
}

// ParseNaturalBase parses a Natural in the given base, 2 <= base <= 36.
func ParseNaturalBase(s string, base int) (Natural, error) {
	if strings.HasPrefix(s, "-") {
		return Natural{}, apperrors.Newf("ParseNatural", apperrors.Syntax, "negative value %q", s)
	}
	s = strings.TrimPrefix(s, "+")
	z, err := nat.Parse(s, base)
	if err != nil {
		return Natural{}, apperrors.WrapError(err, "ParseNatural %q", s)
	}
	return natural(z), nil
}

// ParseInteger parses a decimal Integer with an optional sign.
func ParseInteger(s string) (Integer, error) {
	return ParseIntegerBase(s, 10)
}

// ParseIntegerBase parses an Integer in the given base with an optional sign.
func ParseIntegerBase(s string, base int) (Integer, error) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	} else {
		s = strings.TrimPrefix(s, "+")
	}
	z, err := nat.Parse(s, base)
	if err != nil {
		return Integer{}, apperrors.WrapError(err, "ParseInteger %q", s)
	}
	return integer(neg, natural(z)), nil
}

// ParseRational parses "n/d" or a plain integer, both decimal. The
// numerator may be signed; the denominator may not. The result is reduced.
func ParseRational(s string) (Rational, error) {
	ns, ds, frac := strings.Cut(s, "/")
	n, err := ParseInteger(ns)
	if err != nil {
		return Rational{}, err
	}
	if !frac {
		return RationalFromInteger(n), nil
	}
	d, err := ParseNatural(ds)
	if err != nil {
		return Rational{}, err
	}
	if strings.HasPrefix(ds, "+") {
		return Rational{}, apperrors.Newf("ParseRational", apperrors.Syntax, "signed denominator in %q", s)
	}
	return NewRational(n, IntegerFromNatural(d))
}
