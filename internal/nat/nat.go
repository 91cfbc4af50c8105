package nat

import (
	"math/bits"

	"github.com/agbru/bignum/internal/arith"
	apperrors "github.com/agbru/bignum/internal/errors"
)

// Nat is an unsigned multi-precision number, least-significant limb first.
type Nat []arith.Word

// Word aliases the limb type for callers that only import this package.
type Word = arith.Word

// Limb width constants.
const (
	W = arith.W
	M = arith.M
)

// ─────────────────────────────────────────────────────────────────────────────
// Storage and canonical form
// ─────────────────────────────────────────────────────────────────────────────

// Norm drops most-significant zero limbs.
func (z Nat) Norm() Nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

// Make returns a slice of length n, reusing z's storage when possible.
// The contents are unspecified.
func (z Nat) Make(n int) Nat {
	if n <= cap(z) {
		return z[:n]
	}
	if n == 1 {
		return make(Nat, 1)
	}
	// Extra capacity makes in-place growth by a limb or two cheap.
	const e = 4
	return make(Nat, n, n+e)
}

// IsNormalized reports whether x has no most-significant zero limb. It is
// the validation predicate used by tests; no code path branches on it.
func (x Nat) IsNormalized() bool {
	return len(x) == 0 || x[len(x)-1] != 0
}

// MustBeNormalized panics with an InvalidRepresentation precondition error
// if x is not normalized.
func (x Nat) MustBeNormalized(op string) {
	if !x.IsNormalized() {
		apperrors.Precondition(op, apperrors.InvalidRepresentation, "top limb of %d-limb value is zero", len(x))
	}
}

// alias reports whether x and y share the same base array.
func alias(x, y Nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// Set copies x into z.
func (z Nat) Set(x Nat) Nat {
	z = z.Make(len(x))
	copy(z, x)
	return z
}

// Clone returns a copy of x in fresh storage.
func Clone(x Nat) Nat {
	if len(x) == 0 {
		return nil
	}
	return Nat(nil).Set(x)
}

// SetWord sets z to the single limb x.
func (z Nat) SetWord(x Word) Nat {
	if x == 0 {
		return z[:0]
	}
	z = z.Make(1)
	z[0] = x
	return z
}

// SetUint64 sets z to x.
func (z Nat) SetUint64(x uint64) Nat {
	if w := Word(x); uint64(w) == x {
		return z.SetWord(w)
	}
	// 32-bit limbs
	z = z.Make(2)
	z[1] = Word(x >> 32)
	z[0] = Word(x)
	return z
}

// Uint64 returns the low 64 bits of x.
func (x Nat) Uint64() uint64 {
	var v uint64
	for i := 0; i < len(x) && i < 64/W; i++ {
		v |= uint64(x[i]) << (uint(i) * W)
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection
// ─────────────────────────────────────────────────────────────────────────────

// Cmp compares normalized x and y and returns -1, 0 or +1.
func (x Nat) Cmp(y Nat) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	return arith.Cmp(x, y)
}

// IsZero reports whether x == 0.
func (x Nat) IsZero() bool { return len(x) == 0 }

// BitLen returns the number of significant bits of x.
func (x Nat) BitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*W + bits.Len(uint(x[i]))
	}
	return 0
}

// TrailingZeroBits returns the number of consecutive zero low bits of x.
// It returns 0 for x == 0.
func (x Nat) TrailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*W + arith.Ntz(w)
		}
	}
	return 0
}

// Bit returns bit i of x.
func (x Nat) Bit(i uint) uint {
	j := i / W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%W)) & 1
}

// IsPowerOfTwo reports whether x is a positive power of two.
func (x Nat) IsPowerOfTwo() bool {
	if len(x) == 0 {
		return false
	}
	return x.TrailingZeroBits() == uint(x.BitLen()-1)
}

// ─────────────────────────────────────────────────────────────────────────────
// Addition and subtraction
// ─────────────────────────────────────────────────────────────────────────────

// Add sets z = x + y.
func (z Nat) Add(x, y Nat) Nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.Add(y, x)
	case m == 0:
		return z[:0]
	case n == 0:
		return z.Set(x)
	}
	z = z.Make(m + 1)
	c := arith.AddVV(z[0:n], x, y)
	if m > n {
		c = arith.AddVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.Norm()
}

// Sub sets z = x - y. x must be at least y; a negative result is a library
// defect and panics.
func (z Nat) Sub(x, y Nat) Nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		apperrors.Precondition("nat.Sub", apperrors.LengthMismatch, "underflow: %d-limb minus %d-limb", m, n)
	case m == 0:
		return z[:0]
	case n == 0:
		return z.Set(x)
	}
	z = z.Make(m)
	c := arith.SubVV(z[0:n], x, y)
	if m > n {
		c = arith.SubVW(z[n:], x[n:], c)
	}
	if c != 0 {
		apperrors.Precondition("nat.Sub", apperrors.LengthMismatch, "underflow")
	}
	return z.Norm()
}

// AddWord sets z = x + y.
func (z Nat) AddWord(x Nat, y Word) Nat {
	if y == 0 {
		return z.Set(x)
	}
	m := len(x)
	if m == 0 {
		return z.SetWord(y)
	}
	z = z.Make(m + 1)
	z[m] = arith.AddVW(z[:m], x, y)
	return z.Norm()
}

// SubWord sets z = x - y. x must be at least y.
func (z Nat) SubWord(x Nat, y Word) Nat {
	if y == 0 {
		return z.Set(x)
	}
	m := len(x)
	if m == 0 {
		apperrors.Precondition("nat.SubWord", apperrors.LengthMismatch, "underflow")
	}
	z = z.Make(m)
	if arith.SubVW(z, x, y) != 0 {
		apperrors.Precondition("nat.SubWord", apperrors.LengthMismatch, "underflow")
	}
	return z.Norm()
}

// MulAddWW sets z = x*y + r.
func (z Nat) MulAddWW(x Nat, y, r Word) Nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.SetWord(r)
	}
	z = z.Make(m + 1)
	z[m] = arith.MulAddVWW(z[0:m], x, y, r)
	return z.Norm()
}

// ─────────────────────────────────────────────────────────────────────────────
// Shifts
// ─────────────────────────────────────────────────────────────────────────────

// Shl sets z = x << s.
func (z Nat) Shl(x Nat, s uint) Nat {
	if s == 0 {
		return z.Set(x)
	}
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	n := m + int(s/W)
	z = z.Make(n + 1)
	z[n] = arith.ShlVU(z[n-m:n], x, s%W)
	clear(z[0 : n-m])
	return z.Norm()
}

// Shr sets z = x >> s.
func (z Nat) Shr(x Nat, s uint) Nat {
	if s == 0 {
		return z.Set(x)
	}
	m := len(x)
	n := m - int(s/W)
	if n <= 0 {
		return z[:0]
	}
	z = z.Make(n)
	arith.ShrVU(z, x[m-n:], s%W)
	return z.Norm()
}

// Trunc returns the low n limbs of x, normalized, sharing x's storage.
func (x Nat) Trunc(n int) Nat {
	if n >= len(x) {
		return x
	}
	return x[:n].Norm()
}

// High returns x >> (n*W), sharing x's storage.
func (x Nat) High(n int) Nat {
	if n >= len(x) {
		return nil
	}
	return x[n:]
}
