// Package apperrors defines the error kinds raised by the arithmetic engine
// and the structured errors used by the calibration tool.
//
// Recoverable failures (division by zero, zero denominators, malformed text,
// overflowing conversions) are returned as *ArithmeticError values that match
// the package sentinels through errors.Is. Internal precondition violations
// (inconsistent limb buffer lengths, non-canonical values) are library
// defects: they panic with a *PreconditionError and are never part of the
// public error surface.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors
