// Package nat implements the raw multi-precision engine behind the public
// Natural, Integer and Rational types.
//
// A Nat is a little-endian slice of limbs. Results are normalized (no
// most-significant zero limb; zero is the empty slice). Operations follow
// the math/big receiver convention: the receiver z supplies storage that is
// reused when its capacity suffices, and the result is returned. Passing a
// nil receiver always allocates. Inputs are never modified.
//
// The package picks among competing algorithms by operand length using the
// process-wide table from internal/config. Every algorithm can also be
// forced through MulWith and friends, which is how the cross-algorithm
// equivalence tests and the calibration harness reach each band.
package nat
