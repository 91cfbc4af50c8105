package nat

import (
	"slices"

	apperrors "github.com/agbru/bignum/internal/errors"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// MaxBase is the largest base accepted by Text and Parse.
const MaxBase = len(digits)

// maxPow returns (b**n, n) such that b**n is the largest power of b that
// fits in a Word.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for lim := M / b; p <= lim; {
		p *= b
		n++
	}
	return
}

// divisor is one entry of the power table used by divide-and-conquer
// conversion: bbb = bb**(2**k) and ndigits its digit count.
type divisor struct {
	bbb     Nat
	ndigits int
}

// powerTable returns bb**(2**k) for increasing k while the power is at most
// half the length of an m-limb value.
func powerTable(m int, bb Word, ndig int) []divisor {
	var table []divisor
	p := Nat(nil).SetWord(bb)
	n := ndig
	for 2*len(p) <= m {
		table = append(table, divisor{bbb: p, ndigits: n})
		p = sqr(nil, p)
		n *= 2
	}
	return table
}

// String returns x in decimal.
func (x Nat) String() string {
	return x.Text(10)
}

// Text returns x in the given base, 2 <= base <= 36, lowercase letters for
// digits above 9.
func (x Nat) Text(base int) string {
	return string(x.AppendText(nil, base))
}

// AppendText appends the digits of x in the given base to dst.
func (x Nat) AppendText(dst []byte, base int) []byte {
	if base < 2 || base > MaxBase {
		apperrors.Precondition("nat.Text", apperrors.Syntax, "invalid base %d", base)
	}
	if len(x) == 0 {
		return append(dst, '0')
	}
	bb, ndig := maxPow(Word(base))
	var table []divisor
	if len(x) >= thresholds().ToStringDivideAndConquer {
		table = powerTable(len(x), bb, ndig)
	}
	start := len(dst)
	dst = convertWords(dst, x, Word(base), bb, ndig, table, 0)
	slices.Reverse(dst[start:])
	return dst
}

// convertWords appends the digits of x to dst in reverse order, left-padded
// with zeros to pad digits. Large inputs are split by the biggest table
// power below them and converted half by half.
func convertWords(dst []byte, x Nat, base, bb Word, ndig int, table []divisor, pad int) []byte {
	k := len(table) - 1
	for k >= 0 && 2*len(table[k].bbb) > len(x) {
		k--
	}
	if k >= 0 && len(x) >= thresholds().ToStringDivideAndConquer {
		d := table[k]
		q, r := DivMod(x, d.bbb)
		dst = convertWords(dst, r, base, bb, ndig, table[:k], d.ndigits)
		return convertWords(dst, q, base, bb, ndig, table, max(pad-d.ndigits, 0))
	}

	start := len(dst)
	q := Clone(x)
	for len(q) > 0 {
		var r Word
		q, r = q.DivW(q, bb)
		if len(q) > 0 {
			for range ndig {
				dst = append(dst, digits[r%base])
				r /= base
			}
			continue
		}
		for r != 0 {
			dst = append(dst, digits[r%base])
			r /= base
		}
	}
	for len(dst)-start < pad {
		dst = append(dst, '0')
	}
	return dst
}

// Parse reads an unsigned number in the given base. Only plain digits are
// accepted: no sign, prefix or separator.
func Parse(s string, base int) (Nat, error) {
	const op = "nat.Parse"
	if base < 2 || base > MaxBase {
		return nil, apperrors.Newf(op, apperrors.Syntax, "invalid base %d", base)
	}
	if s == "" {
		return nil, apperrors.Newf(op, apperrors.Syntax, "empty string")
	}
	for i := 0; i < len(s); i++ {
		if digitValue(s[i]) >= Word(base) {
			return nil, apperrors.Newf(op, apperrors.Syntax, "invalid digit %q at offset %d", s[i], i)
		}
	}
	bb, ndig := maxPow(Word(base))
	return parseDigits(s, Word(base), bb, ndig), nil
}

func digitValue(c byte) Word {
	switch {
	case '0' <= c && c <= '9':
		return Word(c - '0')
	case 'a' <= c && c <= 'z':
		return Word(c - 'a' + 10)
	case 'A' <= c && c <= 'Z':
		return Word(c - 'A' + 10)
	}
	return Word(MaxBase)
}

// parseDigits converts validated digits. Long strings are split at a digit
// count that is a power-of-two multiple of ndig, and the halves combined
// with one multiplication.
func parseDigits(s string, base, bb Word, ndig int) Nat {
	if chunks := len(s) / ndig; chunks >= 2*thresholds().ToStringDivideAndConquer {
		lo := ndig
		for 2*lo <= len(s)/2 {
			lo *= 2
		}
		hi := parseDigits(s[:len(s)-lo], base, bb, ndig)
		low := parseDigits(s[len(s)-lo:], base, bb, ndig)
		p := Nat(nil).SetWord(bb)
		for n := ndig; n < lo; n *= 2 {
			p = sqr(nil, p)
		}
		z := mul(nil, hi, p)
		return z.Add(z, low)
	}

	var z Nat
	var acc Word
	n := 0
	for i := 0; i < len(s); i++ {
		acc = acc*base + digitValue(s[i])
		n++
		if n == ndig {
			z = z.MulAddWW(z, bb, acc)
			acc, n = 0, 0
		}
	}
	if n > 0 {
		p := base
		for range n - 1 {
			p *= base
		}
		z = z.MulAddWW(z, p, acc)
	}
	return z
}
