package oracle

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/nat"
)

// Case is one pair of operands to check.
type Case struct {
	X, Y nat.Nat
}

// Limbs returns the length of the longer operand.
func (c Case) Limbs() int { return max(len(c.X), len(c.Y)) }

// Check compares one forced algorithm against an oracle for one case. It
// returns a description of the disagreement, or "" when both agree.
type Check func(o Oracle, alg nat.Algorithm, c Case) string

// CheckMul compares nat.MulWith against o.Mul.
func CheckMul(o Oracle, alg nat.Algorithm, c Case) string {
	got := nat.MulWith(alg, c.X, c.Y)
	if want := o.Mul(c.X, c.Y); got.Cmp(want) != 0 {
		return fmt.Sprintf("product differs in %d of %d limbs", diffLimbs(got, want), max(len(got), len(want)))
	}
	return ""
}

// CheckSqr compares nat.SqrWith on X against o.Mul(X, X).
func CheckSqr(o Oracle, alg nat.Algorithm, c Case) string {
	got := nat.SqrWith(alg, c.X)
	if want := o.Mul(c.X, c.X); got.Cmp(want) != 0 {
		return fmt.Sprintf("square differs in %d limbs", diffLimbs(got, want))
	}
	return ""
}

// CheckDiv compares nat.DivWith against o.DivMod. Cases with a zero
// divisor are skipped.
func CheckDiv(o Oracle, alg nat.Algorithm, c Case) string {
	if len(c.Y) == 0 {
		return ""
	}
	q, r := nat.DivWith(alg, c.X, c.Y)
	wq, wr := o.DivMod(c.X, c.Y)
	switch {
	case q.Cmp(wq) != 0:
		return "quotient differs"
	case r.Cmp(wr) != 0:
		return "remainder differs"
	}
	return ""
}

// CheckGCD compares nat.GCDWith against o.GCD.
func CheckGCD(o Oracle, alg nat.Algorithm, c Case) string {
	if got, want := nat.GCDWith(alg, c.X, c.Y), o.GCD(c.X, c.Y); got.Cmp(want) != 0 {
		return "gcd differs"
	}
	return ""
}

func diffLimbs(a, b nat.Nat) int {
	n := 0
	for i := range max(len(a), len(b)) {
		var x, y uint
		if i < len(a) {
			x = uint(a[i])
		}
		if i < len(b) {
			y = uint(b[i])
		}
		if x != y {
			n++
		}
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Concurrent Cross-Check
// ─────────────────────────────────────────────────────────────────────────────

// Checker runs a Check for every algorithm and case concurrently.
type Checker struct {
	Oracle Oracle
	// Op labels mismatches, e.g. "mul".
	Op    string
	Check Check
	// Limit bounds the number of concurrent checks; zero means GOMAXPROCS.
	Limit int
}

// Run checks every (algorithm, case) pair. The first disagreement cancels
// the remaining work and is returned as an apperrors.MismatchError wrapped
// with its detail. A canceled ctx returns ctx.Err().
func (ck Checker) Run(ctx context.Context, algs []nat.Algorithm, cases []Case) error {
	limit := ck.Limit
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, alg := range algs {
		for _, c := range cases {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if detail := ck.Check(ck.Oracle, alg, c); detail != "" {
					return apperrors.WrapError(apperrors.MismatchError{
						Operation: ck.Op,
						Left:      alg.String(),
						Right:     ck.Oracle.Name(),
						Limbs:     c.Limbs(),
					}, "%s", detail)
				}
				return nil
			})
		}
	}
	return g.Wait()
}
