package arith

import "unsafe"

// ─────────────────────────────────────────────────────────────────────────────
// Machine-word capability
// ─────────────────────────────────────────────────────────────────────────────
//
// The conversions between bignum values and Go's fixed-width integers are
// written once against these constraints and instantiated per width, instead
// of being repeated for uint8 … uint64 and int8 … int64.

// Unsigned is satisfied by every unsigned machine integer.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is satisfied by every signed machine integer.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Integral is satisfied by every machine integer.
type Integral interface {
	Unsigned | Signed
}

// Width returns the width of T in bits.
func Width[T Integral]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// IsSigned reports whether T is a signed type.
func IsSigned[T Integral]() bool {
	var z T
	return z-1 < 0
}

// MaxOf returns the largest value of T.
func MaxOf[T Integral]() T {
	if IsSigned[T]() {
		return T(uint64(1)<<(Width[T]()-1) - 1)
	}
	var z T
	return ^z
}

// MinOf returns the smallest value of T.
func MinOf[T Integral]() T {
	if IsSigned[T]() {
		return -MaxOf[T]() - 1
	}
	return 0
}

// AddOverflow returns x+y wrapped to the width of T and whether the true sum
// overflowed.
func AddOverflow[T Unsigned](x, y T) (sum T, overflow bool) {
	sum = x + y
	return sum, sum < x
}

// MulOverflow returns x*y wrapped to the width of T and whether the true
// product overflowed.
func MulOverflow[T Unsigned](x, y T) (prod T, overflow bool) {
	prod = x * y
	if x == 0 {
		return 0, false
	}
	return prod, prod/x != y
}

// LimbsPerWord returns how many limbs of width T make up one Word.
// T must not be wider than Word.
func LimbsPerWord[T Unsigned]() int {
	return W / Width[T]()
}
