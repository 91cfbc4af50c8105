package app

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/agbru/bignum/internal/arith"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/nat"
	"github.com/agbru/bignum/internal/oracle"
)

type verifyOptions struct {
	limbs       []int
	cases       int
	seed        uint64
	apply       bool
	metricsFile string
}

func (a *Application) verifyCommand() *cobra.Command {
	var o verifyOptions
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check every algorithm against an independent oracle",
		Long: `Runs every multiplication, squaring, division and GCD algorithm on random
operands and compares the results with the strongest oracle compiled in
(libgmp with the gmp build tag, math/big otherwise).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runVerify(cmd, o)
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&o.limbs, "limbs", []int{1, 7, 40, 150, 700, 3000}, "operand sizes in limbs")
	f.IntVar(&o.cases, "cases", 3, "random operand pairs per size")
	f.Uint64Var(&o.seed, "seed", uint64(time.Now().UnixNano()), "operand generator seed")
	f.BoolVar(&o.apply, "with-profile", false, "load the resolved thresholds before checking")
	f.StringVar(&o.metricsFile, "metrics-file", "", "write dispatch counters in Prometheus textfile format")
	return cmd
}

func (a *Application) runVerify(cmd *cobra.Command, o verifyOptions) error {
	if o.cases < 1 {
		return apperrors.NewConfigError("--cases must be positive")
	}
	for _, n := range o.limbs {
		if n < 1 {
			return apperrors.NewConfigError("--limbs values must be positive, got %d", n)
		}
	}
	if o.apply {
		if err := a.installThresholds(); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	collector, err := metrics.NewDispatchCollector(reg)
	if err != nil {
		return err
	}
	prev := nat.SetObserver(collector)
	defer nat.SetObserver(prev)

	cases := randomCases(o.seed, o.limbs, o.cases)
	ref := oracle.Strongest()
	checks := []oracle.Checker{
		{Oracle: ref, Op: "mul", Check: oracle.CheckMul},
		{Oracle: ref, Op: "sqr", Check: oracle.CheckSqr},
		{Oracle: ref, Op: "div", Check: oracle.CheckDiv},
		{Oracle: ref, Op: "gcd", Check: oracle.CheckGCD},
	}
	algs := [][]nat.Algorithm{
		nat.MulAlgorithms,
		nat.MulAlgorithms,
		{nat.DivBasecase, nat.DivNewton},
		{nat.GCDBinary, nat.GCDLehmer},
	}

	sp := a.progressSpinner()
	sp.Start()
	defer sp.Stop()
	for i, ck := range checks {
		sp.UpdateSuffix(fmt.Sprintf(" %s against %s", ck.Op, ref.Name()))
		start := time.Now()
		if err := ck.Run(cmd.Context(), algs[i], cases); err != nil {
			return err
		}
		a.logger.Info("verified",
			logging.String("op", ck.Op),
			logging.String("oracle", ref.Name()),
			logging.Int("algorithms", len(algs[i])),
			logging.Int("cases", len(cases)),
			logging.String("elapsed", time.Since(start).Round(time.Millisecond).String()))
	}
	sp.Stop()
	if o.metricsFile != "" {
		if err := metrics.WriteTextfile(o.metricsFile, reg); err != nil {
			return apperrors.WrapError(err, "writing metrics file")
		}
	}
	fmt.Fprintf(a.Out, "All algorithms agree with %s on %d operand pairs.\n", ref.Name(), len(cases))
	return nil
}

// randomCases returns count operand pairs per size: an n-limb dividend and
// a divisor of roughly half its length.
func randomCases(seed uint64, sizes []int, count int) []oracle.Case {
	r := rand.New(rand.NewPCG(seed, ^seed))
	randNat := func(n int) nat.Nat {
		z := make(nat.Nat, n)
		for i := range z {
			z[i] = arith.Word(r.Uint64())
		}
		z[n-1] |= 1
		return z
	}
	cases := make([]oracle.Case, 0, len(sizes)*count)
	for _, n := range sizes {
		for range count {
			cases = append(cases, oracle.Case{X: randNat(n), Y: randNat(max(n/2, 1))})
		}
	}
	return cases
}
