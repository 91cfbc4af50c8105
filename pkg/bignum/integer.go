package bignum

// Integer is an unbounded signed integer: a sign and a Natural magnitude.
// Zero is never negative. The zero value is 0.
type Integer struct {
	neg bool
	abs Natural
}

// integer is the canonicalizing constructor: it clears the sign of zero.
func integer(neg bool, abs Natural) Integer {
	return Integer{neg: neg && !abs.IsZero(), abs: abs}
}

// IntegerFromInt64 returns v as an Integer.
func IntegerFromInt64(v int64) Integer {
	if v < 0 {
		// -(v+1) avoids overflow at math.MinInt64.
		return integer(true, NaturalFromUint64(uint64(-(v+1))+1))
	}
	return integer(false, NaturalFromUint64(uint64(v)))
}

// IntegerFromNatural returns x as a nonnegative Integer.
func IntegerFromNatural(x Natural) Integer {
	return Integer{abs: x}
}

// Valid reports whether x is in canonical form.
func (x Integer) Valid() bool {
	return x.abs.Valid() && !(x.neg && x.abs.IsZero())
}

// Sign returns -1, 0 or +1.
func (x Integer) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.abs.IsZero():
		return 0
	}
	return 1
}

// IsZero reports whether x == 0.
func (x Integer) IsZero() bool { return x.abs.IsZero() }

// IsNegative reports whether x < 0.
func (x Integer) IsNegative() bool { return x.neg }

// Magnitude returns |x| as a Natural.
func (x Integer) Magnitude() Natural { return x.abs }

// Natural returns x as a Natural, or false if x is negative.
func (x Integer) Natural() (Natural, bool) {
	if x.neg {
		return Natural{}, false
	}
	return x.abs, true
}

// IsInt64 reports whether x fits an int64.
func (x Integer) IsInt64() bool {
	if !x.abs.IsUint64() {
		return false
	}
	m := x.abs.Uint64()
	if x.neg {
		return m <= 1<<63
	}
	return m < 1<<63
}

// Int64 returns the low 64 bits of x in two's complement.
func (x Integer) Int64() int64 {
	m := x.abs.Uint64()
	if x.neg {
		return int64(-m)
	}
	return int64(m)
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Integer) Cmp(y Integer) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return y.abs.Cmp(x.abs)
	}
	return x.abs.Cmp(y.abs)
}

// Equal reports whether x == y.
func (x Integer) Equal(y Integer) bool { return x.Cmp(y) == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// Neg returns -x.
func (x Integer) Neg() Integer { return integer(!x.neg, x.abs) }

// Abs returns |x|.
func (x Integer) Abs() Integer { return Integer{abs: x.abs} }

// Add returns x + y.
func (x Integer) Add(y Integer) Integer {
	if x.neg == y.neg {
		return integer(x.neg, x.abs.Add(y.abs))
	}
	if x.abs.Cmp(y.abs) >= 0 {
		d, _ := x.abs.CheckedSub(y.abs)
		return integer(x.neg, d)
	}
	d, _ := y.abs.CheckedSub(x.abs)
	return integer(y.neg, d)
}

// Sub returns x - y.
func (x Integer) Sub(y Integer) Integer {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Integer) Mul(y Integer) Integer {
	return integer(x.neg != y.neg, x.abs.Mul(y.abs))
}

// Pow returns x**e, with 0**0 = 1.
func (x Integer) Pow(e uint64) Integer {
	return integer(x.neg && e%2 == 1, x.abs.Pow(e))
}

// Lsh returns x << n.
func (x Integer) Lsh(n uint) Integer {
	return integer(x.neg, x.abs.Lsh(n))
}

// Rsh returns x >> n, rounding toward negative infinity like a two's
// complement shift.
func (x Integer) Rsh(n uint) Integer {
	if !x.neg {
		return Integer{abs: x.abs.Rsh(n)}
	}
	// -(⌈|x| / 2^n⌉) = -(((|x| - 1) >> n) + 1)
	m, _ := x.abs.CheckedSub(NaturalFromWord(1))
	return integer(true, m.Rsh(n).Add(NaturalFromWord(1)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Division
// ─────────────────────────────────────────────────────────────────────────────
//
// Two conventions are provided. Quo and Rem truncate toward zero, so the
// remainder takes the sign of x. Div and Mod are Euclidean: the remainder
// is always in [0, |y|).

// QuoRem returns the truncated quotient and remainder.
func (x Integer) QuoRem(y Integer) (q, r Integer, err error) {
	if y.IsZero() {
		return Integer{}, Integer{}, errDivByZero("Integer.QuoRem")
	}
	qm, rm, _ := x.abs.DivMod(y.abs)
	return integer(x.neg != y.neg, qm), integer(x.neg, rm), nil
}

// Quo returns x/y truncated toward zero.
func (x Integer) Quo(y Integer) (Integer, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns x - y*Quo(x, y); its sign is that of x.
func (x Integer) Rem(y Integer) (Integer, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// DivMod returns the Euclidean quotient and modulus: x = q*y + m with
// 0 <= m < |y|.
func (x Integer) DivMod(y Integer) (q, m Integer, err error) {
	if y.IsZero() {
		return Integer{}, Integer{}, errDivByZero("Integer.DivMod")
	}
	q, m, _ = x.QuoRem(y)
	if m.neg {
		m = m.Add(y.Abs())
		if y.neg {
			q = q.Add(IntegerFromInt64(1))
		} else {
			q = q.Sub(IntegerFromInt64(1))
		}
	}
	return q, m, nil
}

// Div returns the Euclidean quotient.
func (x Integer) Div(y Integer) (Integer, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the Euclidean modulus, always in [0, |y|).
func (x Integer) Mod(y Integer) (Integer, error) {
	_, m, err := x.DivMod(y)
	return m, err
}

// GCD returns the greatest common divisor of |x| and |y|.
func (x Integer) GCD(y Integer) Natural {
	return x.abs.GCD(y.abs)
}
