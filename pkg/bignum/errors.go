package bignum

import apperrors "github.com/agbru/bignum/internal/errors"

// ArithmeticError carries the operation, kind and detail of a failure.
type ArithmeticError = apperrors.ArithmeticError

var (
	// ErrDivisionByZero is returned by division and modulus with a zero divisor.
	ErrDivisionByZero = apperrors.ErrDivisionByZero
	// ErrInvalidDenominator is returned when a Rational is built over zero.
	ErrInvalidDenominator = apperrors.ErrInvalidDenominator
	// ErrInvalidRepresentation is returned when decoded input is not canonical.
	ErrInvalidRepresentation = apperrors.ErrInvalidRepresentation
	// ErrConversionOverflow is returned when a value does not fit its target.
	ErrConversionOverflow = apperrors.ErrConversionOverflow
	// ErrSyntax is returned for malformed numeric text.
	ErrSyntax = apperrors.ErrSyntax
)

func errDivByZero(op string) error {
	return apperrors.New(op, apperrors.DivisionByZero)
}
