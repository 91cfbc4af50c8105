package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/bigfft"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
)

// Mul sets z = x*y, choosing the algorithm from the operand lengths.
func (z Nat) Mul(x, y Nat) Nat {
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	alg := selectMul(len(x), len(y), thresholds())
	observe(OpMul, alg, len(x))
	return runMul(z, alg, x, y)
}

// MulWith returns x*y computed with alg at the top level. Recursive
// sub-products use automatic selection. Every algorithm accepts operands of
// any length; the result is identical to Mul.
func MulWith(alg Algorithm, x, y Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if alg == Auto {
		alg = selectMul(len(x), len(y), thresholds())
	}
	observe(OpMul, alg, len(x))
	return runMul(nil, alg, x, y)
}

// Sqr sets z = x*x.
func (z Nat) Sqr(x Nat) Nat {
	if alias(z, x) {
		z = nil
	}
	alg := selectSqr(len(x), thresholds())
	observe(OpSqr, alg, len(x))
	return runSqr(z, alg, x)
}

// SqrWith returns x*x computed with alg at the top level.
func SqrWith(alg Algorithm, x Nat) Nat {
	if alg == Auto {
		alg = selectSqr(len(x), thresholds())
	}
	observe(OpSqr, alg, len(x))
	return runSqr(nil, alg, x)
}

// mul is the recursive entry point: automatic selection, no observation.
// z must not alias x or y.
func mul(z, x, y Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	return runMul(z, selectMul(len(x), len(y), thresholds()), x, y)
}

func sqr(z, x Nat) Nat {
	return runSqr(z, selectSqr(len(x), thresholds()), x)
}

// ─────────────────────────────────────────────────────────────────────────────
// Band selection
// ─────────────────────────────────────────────────────────────────────────────

// selectMul picks the algorithm for an nx-by-ny product, nx >= ny.
// Balanced products are banded on ny; skewed ones pick the asymmetric
// split whose piece ratio best matches nx/ny.
func selectMul(nx, ny int, t *config.Thresholds) Algorithm {
	switch {
	case ny < 2 || ny < t.Toom22:
		return Basecase
	case ny >= t.FFT:
		return FFT
	// nx/ny >= 2.5
	case 2*nx >= 5*ny:
		return Chunked
	// nx/ny in [1.85, 2.5)
	case 20*nx >= 37*ny:
		if ny >= t.Toom6H {
			return Toom63
		}
		return Toom42
	// [1.6, 1.85)
	case 5*nx >= 8*ny:
		return Toom53
	// [1.4, 1.6)
	case 5*nx >= 7*ny:
		return Toom32
	// [1.2, 1.4)
	case 5*nx >= 6*ny:
		return Toom43
	}
	return selectBalanced(ny, t)
}

func selectBalanced(n int, t *config.Thresholds) Algorithm {
	switch {
	case n < t.Toom33:
		return Toom22
	case n < t.Toom44:
		return Toom33
	case n < t.Toom6H:
		return Toom44
	case n < t.Toom8H:
		return Toom6H
	}
	return Toom8H
}

func selectSqr(n int, t *config.Thresholds) Algorithm {
	switch {
	case n < 2 || n < t.Toom22:
		return Basecase
	case n >= t.FFTSquare:
		return FFT
	}
	return selectBalanced(n, t)
}

// ─────────────────────────────────────────────────────────────────────────────
// Execution
// ─────────────────────────────────────────────────────────────────────────────

// runMul computes x*y with alg at the top level. len(x) >= len(y).
func runMul(z Nat, alg Algorithm, x, y Nat) Nat {
	m, n := len(x), len(y)
	switch {
	case n == 0:
		return z[:0]
	case n == 1 && alg == Basecase:
		return z.MulAddWW(x, y[0], 0)
	}
	switch alg {
	case Basecase:
		z = z.Make(m + n)
		basicMul(z, x, y)
		return z.Norm()
	case FFT:
		return into(z, bigfft.Mul(x, y, pointwiseMul))
	case Chunked:
		return mulChunked(z, x, y)
	}
	if k, l, ok := toomShape(alg); ok {
		return toomMul(z, x, y, k, l)
	}
	apperrors.Precondition("nat.Mul", apperrors.LengthMismatch, "unknown multiplication algorithm %v", alg)
	return nil
}

func runSqr(z Nat, alg Algorithm, x Nat) Nat {
	n := len(x)
	switch {
	case n == 0:
		return z[:0]
	case n == 1 && alg == Basecase:
		z = z.Make(2)
		z[1], z[0] = arith.MulWW(x[0], x[0])
		return z.Norm()
	}
	switch alg {
	case Basecase:
		z = z.Make(2 * n)
		basicSqr(z, x)
		return z.Norm()
	case FFT:
		return into(z, bigfft.Sqr(x, pointwiseMul))
	case Chunked:
		return mulChunked(z, x, x)
	}
	if k, _, ok := toomShape(alg); ok {
		return toomSqr(z, x, k)
	}
	apperrors.Precondition("nat.Sqr", apperrors.LengthMismatch, "unknown squaring algorithm %v", alg)
	return nil
}

// into moves r, computed in fresh storage, into z when z has room for it.
func into(z, r Nat) Nat {
	if cap(z) < len(r) {
		return r
	}
	return z.Set(r)
}

// pointwiseMul multiplies transform values for bigfft. Identical arguments
// take the squaring path.
func pointwiseMul(x, y []arith.Word) []arith.Word {
	if len(x) == len(y) && len(x) > 0 && &x[0] == &y[0] {
		return sqr(nil, x)
	}
	return mul(nil, x, y)
}

func panicCarry() {
	apperrors.Precondition("nat.addAt", apperrors.LengthMismatch, "carry out of destination")
}
