package calibration

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/nat"
)

// Band is one algorithm boundary: Below is used under the crossover and
// Above from it on.
type Band struct {
	Name         string
	Op           nat.Op
	Below, Above nat.Algorithm
	// Min is the smallest limb count Above is measured at.
	Min int
	// Field selects the threshold set by this band.
	Field func(*config.Thresholds) *int
}

// Bands returns every boundary in dispatch order.
func Bands() []Band {
	return []Band{
		{"toom22", nat.OpMul, nat.Basecase, nat.Toom22, config.MinToom22, func(t *config.Thresholds) *int { return &t.Toom22 }},
		{"toom33", nat.OpMul, nat.Toom22, nat.Toom33, config.MinToom22, func(t *config.Thresholds) *int { return &t.Toom33 }},
		{"toom44", nat.OpMul, nat.Toom33, nat.Toom44, config.MinToom22, func(t *config.Thresholds) *int { return &t.Toom44 }},
		{"toom6h", nat.OpMul, nat.Toom44, nat.Toom6H, config.MinToom22, func(t *config.Thresholds) *int { return &t.Toom6H }},
		{"toom8h", nat.OpMul, nat.Toom6H, nat.Toom8H, config.MinToom22, func(t *config.Thresholds) *int { return &t.Toom8H }},
		{"fft", nat.OpMul, nat.Toom8H, nat.FFT, config.MinFFT, func(t *config.Thresholds) *int { return &t.FFT }},
		{"fft_square", nat.OpSqr, nat.Toom8H, nat.FFT, config.MinFFT, func(t *config.Thresholds) *int { return &t.FFTSquare }},
		{"div_newton", nat.OpDiv, nat.DivBasecase, nat.DivNewton, config.MinDivNewton, func(t *config.Thresholds) *int { return &t.DivNewton }},
		{"gcd_lehmer", nat.OpGCD, nat.GCDBinary, nat.GCDLehmer, config.MinGCDLehmer, func(t *config.Thresholds) *int { return &t.GCDLehmer }},
	}
}

// Select returns the bands whose names are listed, all of them for an
// empty list. Unknown names are returned as the second value.
func Select(names []string) (bands []Band, unknown []string) {
	all := Bands()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Band, len(all))
	for _, b := range all {
		byName[b.Name] = b
	}
	for _, n := range names {
		b, ok := byName[n]
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		bands = append(bands, b)
	}
	return bands, unknown
}

// operands returns the operand pair measured at n limbs: balanced for
// products, 2n by n for division.
func (b Band) operands(g *generator, n int) (x, y nat.Nat) {
	switch b.Op {
	case nat.OpDiv:
		return g.nat(2 * n), g.nat(n)
	case nat.OpSqr:
		x = g.nat(n)
		return x, x
	}
	return g.nat(n), g.nat(n)
}

// run computes the band's operation with alg forced at the top level. The
// division remainder is folded into the low len(y) limbs of the result,
// under the quotient, so a wrong remainder is caught too.
func (b Band) run(alg nat.Algorithm, x, y nat.Nat) nat.Nat {
	switch b.Op {
	case nat.OpSqr:
		return nat.SqrWith(alg, x)
	case nat.OpDiv:
		q, r := nat.DivWith(alg, x, y)
		return nat.Nat(nil).Add(nat.Nat(nil).Shl(q, uint(len(y)*arith.W)), r)
	case nat.OpGCD:
		return nat.GCDWith(alg, x, y)
	}
	return nat.MulWith(alg, x, y)
}
