// Package bignum provides arbitrary-precision natural numbers, integers and
// rationals as value types.
//
// Every value is kept in a single canonical form: a Natural that fits one
// machine word never carries a limb vector, an Integer zero is never
// negative, and a Rational is always in lowest terms with a positive
// denominator. Value methods such as Add and Mul return new values and
// never modify their operands, so their results may be copied freely and
// shared between goroutines.
//
// The assignment methods (SetAdd, SetMul and the like on *Natural and
// *Integer) store the result in the receiver and reuse its limb storage.
// A plain copy of a value shares that storage; use Clone for a copy that
// must survive a later assignment to the original.
//
// Arithmetic that can fail for user input (division by zero, a zero
// denominator, a value out of range for a fixed-width target) reports the
// failure through an error or an ok flag. The sentinel errors below match
// with errors.Is.
package bignum
