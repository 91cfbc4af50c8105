package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the calibration tool.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between algorithms.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic Error Kinds
// ─────────────────────────────────────────────────────────────────────────────

// Kind classifies an arithmetic failure.
type Kind int

const (
	// LengthMismatch: a limb-vector primitive received inconsistent buffers.
	LengthMismatch Kind = iota + 1
	// DivisionByZero: division or modulus by a zero divisor.
	DivisionByZero
	// InvalidDenominator: a rational was built with a zero denominator.
	InvalidDenominator
	// InvalidRepresentation: a value failed canonicality validation.
	InvalidRepresentation
	// ConversionOverflow: a value does not fit the requested fixed-width target.
	ConversionOverflow
	// Syntax: text could not be parsed as a number.
	Syntax
)

var kindNames = [...]string{
	LengthMismatch:        "length mismatch",
	DivisionByZero:        "division by zero",
	InvalidDenominator:    "invalid denominator",
	InvalidRepresentation: "invalid representation",
	ConversionOverflow:    "conversion overflow",
	Syntax:                "invalid syntax",
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Recoverable reports whether errors of this kind are returned to callers
// rather than raised as panics.
func (k Kind) Recoverable() bool {
	return k != LengthMismatch && k != InvalidRepresentation
}

// Sentinel errors, one per recoverable kind. Match with errors.Is.
var (
	ErrDivisionByZero        = &ArithmeticError{Kind: DivisionByZero}
	ErrInvalidDenominator    = &ArithmeticError{Kind: InvalidDenominator}
	ErrInvalidRepresentation = &ArithmeticError{Kind: InvalidRepresentation}
	ErrConversionOverflow    = &ArithmeticError{Kind: ConversionOverflow}
	ErrSyntax                = &ArithmeticError{Kind: Syntax}
)

// ArithmeticError is a recoverable arithmetic failure. Two ArithmeticErrors
// match under errors.Is when their kinds are equal, so a failure carrying an
// operation name and detail still matches the bare sentinel.
type ArithmeticError struct {
	// Op names the failing operation, e.g. "Natural.DivMod".
	Op string
	// Kind classifies the failure.
	Kind Kind
	// Detail is optional extra context such as the offending input.
	Detail string
}

// Error returns "<op>: <kind>[: <detail>]".
func (e *ArithmeticError) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target is an *ArithmeticError of the same kind.
func (e *ArithmeticError) Is(target error) bool {
	var t *ArithmeticError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// New creates an *ArithmeticError for op with the given kind.
func New(op string, kind Kind) error {
	return &ArithmeticError{Op: op, Kind: kind}
}

// Newf creates an *ArithmeticError with a formatted detail message.
func Newf(op string, kind Kind, format string, a ...any) error {
	return &ArithmeticError{Op: op, Kind: kind, Detail: fmt.Sprintf(format, a...)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Precondition Violations
// ─────────────────────────────────────────────────────────────────────────────

// PreconditionError is the panic value raised when an internal invariant is
// violated. Reaching one means the library itself is defective.
type PreconditionError struct {
	Op      string
	Kind    Kind
	Message string
}

// Error returns a formatted message describing the violated precondition.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("bignum: internal precondition violated in %s (%s): %s", e.Op, e.Kind, e.Message)
}

// Precondition panics with a *PreconditionError.
func Precondition(op string, kind Kind, format string, a ...any) {
	panic(&PreconditionError{Op: op, Kind: kind, Message: fmt.Sprintf(format, a...)})
}

// ─────────────────────────────────────────────────────────────────────────────
// Tool Errors
// ─────────────────────────────────────────────────────────────────────────────

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// MismatchError reports that two algorithms disagreed on the same operands.
type MismatchError struct {
	// Operation is the compared operation, e.g. "mul".
	Operation string
	// Left and Right name the two disagreeing implementations.
	Left, Right string
	// Limbs is the operand size at which the disagreement was observed.
	Limbs int
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("%s: %s and %s disagree at %d limbs", e.Operation, e.Left, e.Right, e.Limbs)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
