package nat

import "math/bits"

// Pow returns x**e by left-to-right square-and-multiply. Pow(0, 0) = 1.
func Pow(x Nat, e uint64) Nat {
	switch {
	case e == 0:
		return Nat{1}
	case len(x) == 0:
		return nil
	case e == 1:
		return Clone(x)
	}
	if x.IsPowerOfTwo() {
		// 2**k raised to e is a single shift.
		return Nat(nil).Shl(Nat{1}, uint(x.BitLen()-1)*uint(e))
	}
	z := Clone(x)
	for i := 62 - bits.LeadingZeros64(e); i >= 0; i-- {
		z = sqr(nil, z)
		if e&(1<<uint(i)) != 0 {
			z = mul(nil, z, x)
		}
	}
	return z
}

// Sqrt returns ⌊√x⌋ by Newton's iteration from an initial guess above the
// root; the iterates decrease monotonically until they stop.
func Sqrt(x Nat) Nat {
	switch {
	case len(x) == 0:
		return nil
	case len(x) == 1 && x[0] < 4:
		return Nat{1}
	}
	z1 := Nat(nil).Shl(Nat{1}, uint(x.BitLen()+1)/2)
	for {
		q, _ := DivMod(x, z1)
		z2 := Nat(nil).Add(z1, q)
		z2 = z2.Shr(z2, 1)
		if z2.Cmp(z1) >= 0 {
			return z1
		}
		z1 = z2
	}
}
