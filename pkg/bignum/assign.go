package bignum

import "github.com/agbru/bignum/internal/nat"

// Assignment methods store their result in the receiver and reuse its limb
// storage when the result fits. They accept operands that are the receiver
// itself. A Natural copied by assignment shares limb storage with the
// original, so duplicate a value with Clone before making either copy the
// receiver of an assignment.

// Clone returns a copy of x that shares no storage with it.
func (x Natural) Clone() Natural {
	if x.large == nil {
		return x
	}
	return Natural{large: nat.Clone(x.large)}
}

// buffer returns the limb storage of z for an assignment with operands ops,
// or nil when it must not be reused. Storage shared with an operand is
// reused only for elementwise operations whose operand starts at the same
// limb as z.
func (z *Natural) buffer(elementwise bool, ops ...nat.Nat) nat.Nat {
	buf := z.large[:0]
	if cap(buf) == 0 {
		return nil
	}
	end := &buf[:cap(buf)][cap(buf)-1]
	for _, x := range ops {
		if cap(x) == 0 || &x[:cap(x)][cap(x)-1] != end {
			continue
		}
		if !elementwise || &x[:1][0] != &buf[:1][0] {
			return nil
		}
	}
	return buf
}

func (z *Natural) assign(r nat.Nat) *Natural {
	*z = natural(r)
	return z
}

// Set sets z = x and returns z.
func (z *Natural) Set(x Natural) *Natural {
	if x.large == nil {
		*z = x
		return z
	}
	return z.assign(z.buffer(false, x.large).Set(x.large))
}

// SetAdd sets z = x + y and returns z.
func (z *Natural) SetAdd(x, y Natural) *Natural {
	if x.large == nil && y.large == nil {
		*z = x.Add(y)
		return z
	}
	xl, yl := x.limbs(), y.limbs()
	return z.assign(z.buffer(true, xl, yl).Add(xl, yl))
}

// SetSub sets z = x - y and returns z and true. If y > x, z is left
// unchanged and the result is false.
func (z *Natural) SetSub(x, y Natural) (*Natural, bool) {
	if x.Cmp(y) < 0 {
		return z, false
	}
	if x.large == nil {
		*z = Natural{small: x.small - y.small}
		return z, true
	}
	xl, yl := x.limbs(), y.limbs()
	return z.assign(z.buffer(true, xl, yl).Sub(xl, yl)), true
}

// SetMul sets z = x * y and returns z.
func (z *Natural) SetMul(x, y Natural) *Natural {
	if x.large == nil && y.large == nil {
		*z = x.Mul(y)
		return z
	}
	xl, yl := x.limbs(), y.limbs()
	return z.assign(z.buffer(false, xl, yl).Mul(xl, yl))
}

// SetSqr sets z = x * x and returns z.
func (z *Natural) SetSqr(x Natural) *Natural {
	if x.large == nil {
		return z.SetMul(x, x)
	}
	return z.assign(z.buffer(false, x.large).Sqr(x.large))
}

// SetLsh sets z = x << n and returns z.
func (z *Natural) SetLsh(x Natural, n uint) *Natural {
	xl := x.limbs()
	return z.assign(z.buffer(false, xl).Shl(xl, n))
}

// SetRsh sets z = x >> n and returns z.
func (z *Natural) SetRsh(x Natural, n uint) *Natural {
	if x.large == nil {
		*z = x.Rsh(n)
		return z
	}
	return z.assign(z.buffer(false, x.large).Shr(x.large, n))
}

// Clone returns a copy of x that shares no storage with it.
func (x Integer) Clone() Integer {
	return Integer{neg: x.neg, abs: x.abs.Clone()}
}

// Set sets z = x and returns z.
func (z *Integer) Set(x Integer) *Integer {
	z.abs.Set(x.abs)
	z.neg = x.neg
	return z
}

// SetAdd sets z = x + y and returns z.
func (z *Integer) SetAdd(x, y Integer) *Integer {
	neg := x.neg
	switch {
	case x.neg == y.neg:
		z.abs.SetAdd(x.abs, y.abs)
	case x.abs.Cmp(y.abs) >= 0:
		z.abs.SetSub(x.abs, y.abs)
	default:
		neg = y.neg
		z.abs.SetSub(y.abs, x.abs)
	}
	z.neg = neg && !z.abs.IsZero()
	return z
}

// SetSub sets z = x - y and returns z.
func (z *Integer) SetSub(x, y Integer) *Integer {
	return z.SetAdd(x, y.Neg())
}

// SetMul sets z = x * y and returns z.
func (z *Integer) SetMul(x, y Integer) *Integer {
	neg := x.neg != y.neg
	z.abs.SetMul(x.abs, y.abs)
	z.neg = neg && !z.abs.IsZero()
	return z
}
