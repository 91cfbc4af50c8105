package bignum

import (
	"math/bits"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/nat"
)

// Word is one limb of a Natural: a machine word, least significant first.
type Word = arith.Word

// Natural is an unbounded nonnegative integer. The zero value is 0.
//
// A value that fits one Word is held inline; larger values hold a limb
// vector of at least two limbs whose top limb is nonzero. Only the
// assignment methods (SetAdd, SetMul and the like) write to a limb vector,
// and only to the receiver's own.
type Natural struct {
	small Word
	large nat.Nat
}

// natural is the canonicalizing constructor every operation returns
// through. z may be unnormalized; it is not copied.
func natural(z nat.Nat) Natural {
	z = z.Norm()
	switch len(z) {
	case 0:
		return Natural{}
	case 1:
		return Natural{small: z[0]}
	}
	return Natural{large: z}
}

// limbs returns the limb view of x. The result must not be modified.
func (x Natural) limbs() nat.Nat {
	if x.large != nil {
		return x.large
	}
	if x.small == 0 {
		return nil
	}
	return nat.Nat{x.small}
}

// NaturalFromWord returns w as a Natural.
func NaturalFromWord(w Word) Natural {
	return Natural{small: w}
}

// NaturalFromUint64 returns v as a Natural.
func NaturalFromUint64(v uint64) Natural {
	return natural(nat.Nat(nil).SetUint64(v))
}

// NaturalFromLimbs returns the Natural whose little-endian limbs are ws.
// Most-significant zero limbs are allowed; ws is copied.
func NaturalFromLimbs(ws []Word) Natural {
	return natural(nat.Clone(nat.Nat(ws).Norm()))
}

// Limbs returns a copy of the significant limbs of x, least significant
// first. Zero has no limbs.
func (x Natural) Limbs() []Word {
	return nat.Clone(x.limbs())
}

// LimbCount returns the number of significant limbs of x.
func (x Natural) LimbCount() int {
	return len(x.limbs())
}

// IsSmall reports whether x is held in the single-word form.
func (x Natural) IsSmall() bool { return x.large == nil }

// Valid reports whether x is in canonical form. Every value produced by
// this package is; the check exists for tests and decoders.
func (x Natural) Valid() bool {
	if x.large == nil {
		return true
	}
	return len(x.large) >= 2 && x.large.IsNormalized()
}

// ─────────────────────────────────────────────────────────────────────────────
// Inspection
// ─────────────────────────────────────────────────────────────────────────────

// IsZero reports whether x == 0.
func (x Natural) IsZero() bool { return x.large == nil && x.small == 0 }

// BitLen returns the number of significant bits of x; BitLen(0) = 0.
func (x Natural) BitLen() int {
	if x.large == nil {
		return bits.Len(uint(x.small))
	}
	return x.large.BitLen()
}

// TrailingZeros returns the number of trailing zero bits of x, 0 for x == 0.
func (x Natural) TrailingZeros() uint {
	if x.large == nil {
		if x.small == 0 {
			return 0
		}
		return arith.Ntz(x.small)
	}
	return x.large.TrailingZeroBits()
}

// Bit returns bit i of x.
func (x Natural) Bit(i uint) uint {
	return x.limbs().Bit(i)
}

// IsPowerOfTwo reports whether x is a positive power of two.
func (x Natural) IsPowerOfTwo() bool {
	return x.limbs().IsPowerOfTwo()
}

// IsUint64 reports whether x fits a uint64.
func (x Natural) IsUint64() bool { return x.BitLen() <= 64 }

// Uint64 returns the low 64 bits of x.
func (x Natural) Uint64() uint64 {
	if x.large == nil {
		return uint64(x.small)
	}
	return x.large.Uint64()
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Natural) Cmp(y Natural) int {
	if x.large == nil && y.large == nil {
		switch {
		case x.small < y.small:
			return -1
		case x.small > y.small:
			return 1
		}
		return 0
	}
	return x.limbs().Cmp(y.limbs())
}

// Equal reports whether x == y.
func (x Natural) Equal(y Natural) bool { return x.Cmp(y) == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Add returns x + y.
func (x Natural) Add(y Natural) Natural {
	if x.large == nil && y.large == nil {
		s, c := bits.Add(uint(x.small), uint(y.small), 0)
		if c == 0 {
			return Natural{small: Word(s)}
		}
		return Natural{large: nat.Nat{Word(s), 1}}
	}
	return natural(nat.Nat(nil).Add(x.limbs(), y.limbs()))
}

// CheckedSub returns x - y, or false if y > x.
func (x Natural) CheckedSub(y Natural) (Natural, bool) {
	if x.Cmp(y) < 0 {
		return Natural{}, false
	}
	if x.large == nil {
		return Natural{small: x.small - y.small}, true
	}
	return natural(nat.Nat(nil).Sub(x.limbs(), y.limbs())), true
}

// SaturatingSub returns x - y, or 0 if y > x.
func (x Natural) SaturatingSub(y Natural) Natural {
	d, _ := x.CheckedSub(y)
	return d
}

// AbsDiff returns |x - y|.
func (x Natural) AbsDiff(y Natural) Natural {
	if x.Cmp(y) < 0 {
		x, y = y, x
	}
	d, _ := x.CheckedSub(y)
	return d
}

// Mul returns x * y.
func (x Natural) Mul(y Natural) Natural {
	if x.large == nil && y.large == nil {
		hi, lo := bits.Mul(uint(x.small), uint(y.small))
		if hi == 0 {
			return Natural{small: Word(lo)}
		}
		return Natural{large: nat.Nat{Word(lo), Word(hi)}}
	}
	return natural(nat.Nat(nil).Mul(x.limbs(), y.limbs()))
}

// Sqr returns x * x.
func (x Natural) Sqr() Natural {
	if x.large == nil {
		return x.Mul(x)
	}
	return natural(nat.Nat(nil).Sqr(x.large))
}

// Pow returns x**e, with 0**0 = 1.
func (x Natural) Pow(e uint64) Natural {
	return natural(nat.Pow(x.limbs(), e))
}

// Sqrt returns ⌊√x⌋.
func (x Natural) Sqrt() Natural {
	return natural(nat.Sqrt(x.limbs()))
}

// Lsh returns x << n.
func (x Natural) Lsh(n uint) Natural {
	return natural(nat.Nat(nil).Shl(x.limbs(), n))
}

// Rsh returns x >> n.
func (x Natural) Rsh(n uint) Natural {
	if x.large == nil {
		if n >= arith.W {
			return Natural{}
		}
		return Natural{small: x.small >> n}
	}
	return natural(nat.Nat(nil).Shr(x.large, n))
}

// ─────────────────────────────────────────────────────────────────────────────
// Division
// ─────────────────────────────────────────────────────────────────────────────

// DivMod returns q = ⌊x/y⌋ and r = x - q*y, with 0 <= r < y.
func (x Natural) DivMod(y Natural) (q, r Natural, err error) {
	if y.IsZero() {
		return Natural{}, Natural{}, errDivByZero("Natural.DivMod")
	}
	if x.large == nil && y.large == nil {
		return Natural{small: x.small / y.small}, Natural{small: x.small % y.small}, nil
	}
	qn, rn := nat.DivMod(x.limbs(), y.limbs())
	return natural(qn), natural(rn), nil
}

// Div returns ⌊x/y⌋.
func (x Natural) Div(y Natural) (Natural, error) {
	if y.IsZero() {
		return Natural{}, errDivByZero("Natural.Div")
	}
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns x mod y.
func (x Natural) Mod(y Natural) (Natural, error) {
	if y.IsZero() {
		return Natural{}, errDivByZero("Natural.Mod")
	}
	_, r, err := x.DivMod(y)
	return r, err
}

// DivExact returns x/y for a nonzero y that divides x. The quotient is
// found without computing a remainder; if y does not divide x the result
// is unspecified.
func (x Natural) DivExact(y Natural) (Natural, error) {
	if y.IsZero() {
		return Natural{}, errDivByZero("Natural.DivExact")
	}
	if x.large == nil && y.large == nil {
		return Natural{small: x.small / y.small}, nil
	}
	return natural(nat.DivExact(x.limbs(), y.limbs())), nil
}

// IsMultipleOf reports whether y divides x. Zero divides only zero.
func (x Natural) IsMultipleOf(y Natural) bool {
	if y.IsZero() {
		return x.IsZero()
	}
	_, r, _ := x.DivMod(y)
	return r.IsZero()
}

// ─────────────────────────────────────────────────────────────────────────────
// GCD
// ─────────────────────────────────────────────────────────────────────────────

// GCD returns the greatest common divisor of x and y; GCD(0, 0) = 0.
func (x Natural) GCD(y Natural) Natural {
	return natural(nat.GCD(x.limbs(), y.limbs()))
}

// LCM returns the least common multiple of x and y; LCM with 0 is 0.
func (x Natural) LCM(y Natural) Natural {
	if x.IsZero() || y.IsZero() {
		return Natural{}
	}
	q, _ := x.DivExact(x.GCD(y))
	return q.Mul(y)
}

// ExtendedGCD returns g = GCD(x, y) and Bézout coefficients a, b with
// a*x + b*y = g.
func (x Natural) ExtendedGCD(y Natural) (g Natural, a, b Integer) {
	gn, sa, sb := nat.ExtGCD(x.limbs(), y.limbs())
	return natural(gn), integer(sa.Neg, natural(sa.Mag)), integer(sb.Neg, natural(sb.Mag))
}

// ModInverse returns the inverse of x modulo m, or false if none exists
// (m == 0 or GCD(x, m) != 1).
func (x Natural) ModInverse(m Natural) (Natural, bool) {
	switch {
	case m.IsZero():
		return Natural{}, false
	case m.Cmp(NaturalFromWord(1)) == 0:
		return Natural{}, true
	}
	inv, ok := nat.ModInverse(x.limbs(), m.limbs())
	if !ok {
		return Natural{}, false
	}
	return natural(inv), true
}
