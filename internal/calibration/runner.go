// Package calibration measures the algorithm crossovers of the limb engine
// on the current machine and produces a threshold profile.
package calibration

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/bigfft"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/nat"
)

const tracerName = "github.com/agbru/bignum/internal/calibration"

// Streak is the number of consecutive sizes the faster algorithm must win
// before a crossover is accepted.
const Streak = 3

// Measurement is the timing of both algorithms of a band at one size.
type Measurement struct {
	Limbs        int
	Below, Above time.Duration
	// AboveAlloc is the per-operation allocation of the Above algorithm.
	AboveAlloc metrics.AllocDelta
}

// Faster reports whether the Above algorithm won.
func (m Measurement) Faster() bool { return m.Above < m.Below }

// Result is the outcome of one band.
type Result struct {
	Band         Band
	Measurements []Measurement
	// Crossover is the accepted threshold. When Found is false no streak
	// was observed and Crossover holds the previous value.
	Crossover int
	Found     bool
}

// ProgressFunc is called after each measured size.
type ProgressFunc func(band string, done, total int)

// Runner measures bands. The zero value measures every band with the
// default ladder.
type Runner struct {
	Logger logging.Logger
	// Gauges, when set, receives every timing and crossover.
	Gauges *metrics.CalibrationGauges
	// Bands to measure; all when empty.
	Bands []Band
	// MaxLimbs caps the operand size; zero means 4x the current FFT threshold.
	MaxLimbs int
	Quick    bool
	// Parallel measures independent bands concurrently.
	Parallel bool
	Seed     uint64
	// GC selects how the collector behaves while timing; GCModeAuto when empty.
	GC       GCMode
	Progress ProgressFunc
}

// Run measures every band and returns a profile holding the merged
// thresholds. Operand pairs on which the two algorithms of a band disagree
// abort the run with an apperrors.MismatchError.
func (r *Runner) Run(ctx context.Context) (*config.Profile, []Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	bands := r.Bands
	if len(bands) == 0 {
		bands = Bands()
	}
	base := nat.Thresholds()
	maxLimbs := r.MaxLimbs
	if maxLimbs <= 0 {
		maxLimbs = 4 * base.FFT
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "calibration.run")
	defer span.End()
	span.SetAttributes(
		attribute.Int("bands", len(bands)),
		attribute.Int("max_limbs", maxLimbs),
		attribute.Bool("quick", r.Quick),
	)

	gc := newGCGuard(r.GC, maxLimbs, logger)
	gc.begin()
	defer gc.end()

	start := time.Now()
	results := make([]Result, len(bands))
	g, gctx := errgroup.WithContext(ctx)
	if !r.Parallel {
		g.SetLimit(1)
	}
	for i, b := range bands {
		g.Go(func() error {
			res, err := r.measureBand(gctx, logger, b, base, maxLimbs, r.Seed+uint64(i))
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "calibration failed")
		return nil, results, err
	}

	t := base
	for _, res := range results {
		*res.Band.Field(&t) = res.Crossover
	}
	t = makeMonotone(t)
	if err := t.Validate(); err != nil {
		return nil, results, apperrors.WrapError(err, "measured thresholds")
	}

	p := config.NewProfile()
	p.Thresholds = t
	p.Thresholds.Provenance = config.Provenance{Source: config.SourceProfile, WordBits: arith.W}
	p.Duration = time.Since(start).Round(time.Millisecond).String()
	p.MaxLimbs = maxLimbs
	logger.Info("calibration complete", logging.String("duration", p.Duration), logging.String("thresholds", t.String()))
	return p, results, nil
}

// makeMonotone lifts the multiplication bands so that each is at least the
// one before, and the FFT bands to their minimum.
func makeMonotone(t config.Thresholds) config.Thresholds {
	fields := []*int{&t.Toom22, &t.Toom33, &t.Toom44, &t.Toom6H, &t.Toom8H, &t.FFT}
	values := make([]int, len(fields))
	for i, f := range fields {
		values[i] = *f
	}
	for i, v := range Monotone(values) {
		*fields[i] = v
	}
	t.FFT = max(t.FFT, config.MinFFT)
	t.FFTSquare = max(t.FFTSquare, t.Toom8H, config.MinFFT)
	return t
}

func (r *Runner) measureBand(ctx context.Context, logger logging.Logger, b Band, base config.Thresholds, maxLimbs int, seed uint64) (Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "calibration.band")
	defer span.End()
	span.SetAttributes(attribute.String("band", b.Name), attribute.String("op", string(b.Op)))

	guess := *b.Field(&base)
	res := Result{Band: b, Crossover: guess}
	sizes := Ladder(guess, b.Min, maxLimbs, r.Quick)
	window := MinTime(r.Quick, r.Parallel)
	gen := newGenerator(seed)

	faster := make([]bool, 0, len(sizes))
	for i, n := range sizes {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		x, y := b.operands(gen, n)
		warmPools(b, x, y)
		below, belowOut, _ := timeOp(window, func() nat.Nat { return b.run(b.Below, x, y) })
		above, aboveOut, alloc := timeOp(window, func() nat.Nat { return b.run(b.Above, x, y) })
		if belowOut.Cmp(aboveOut) != 0 {
			err := apperrors.MismatchError{Operation: string(b.Op), Left: b.Below.String(), Right: b.Above.String(), Limbs: n}
			span.RecordError(err)
			span.SetStatus(codes.Error, "algorithms disagree")
			return res, err
		}
		m := Measurement{Limbs: n, Below: below, Above: above, AboveAlloc: alloc}
		res.Measurements = append(res.Measurements, m)
		faster = append(faster, m.Faster())
		if r.Gauges != nil {
			r.Gauges.SetDuration(b.Name, b.Below, n, below.Seconds())
			r.Gauges.SetDuration(b.Name, b.Above, n, above.Seconds())
		}
		logger.Debug("band measured",
			logging.String("band", b.Name),
			logging.Int("limbs", n),
			logging.String(b.Below.String(), below.String()),
			logging.String(b.Above.String(), above.String()))
		if r.Progress != nil {
			r.Progress(b.Name, i+1, len(sizes))
		}
	}

	if c, ok := Crossover(sizes, faster, Streak); ok {
		res.Crossover, res.Found = c, true
	}
	span.SetAttributes(attribute.Int("crossover", res.Crossover), attribute.Bool("found", res.Found))
	if r.Gauges != nil {
		r.Gauges.Crossover.WithLabelValues(b.Name).Set(float64(res.Crossover))
	}
	logger.Info("band calibrated",
		logging.String("band", b.Name),
		logging.Int("crossover", res.Crossover),
		logging.Int("sizes", len(sizes)))
	return res, nil
}

// warmPools seeds the FFT buffer pools for the operand shape of an FFT band
// so the first timed products do not pay for pool growth.
func warmPools(b Band, x, y nat.Nat) bool {
	if b.Above != nat.FFT {
		return false
	}
	bigfft.Warm(len(x), len(y))
	return true
}

// timeOp runs f repeatedly for at least window and returns the mean time
// per call, the last result and the mean allocation per call.
func timeOp(window time.Duration, f func() nat.Nat) (time.Duration, nat.Nat, metrics.AllocDelta) {
	var out nat.Nat
	before := metrics.ReadMemory()
	start := time.Now()
	reps := 0
	for reps == 0 || time.Since(start) < window {
		out = f()
		reps++
	}
	elapsed := time.Since(start)
	alloc := metrics.ReadMemory().Since(before).PerOp(reps)
	return elapsed / time.Duration(reps), out, alloc
}

// ─────────────────────────────────────────────────────────────────────────────
// Operand Generation
// ─────────────────────────────────────────────────────────────────────────────

type generator struct {
	r *rand.Rand
}

func newGenerator(seed uint64) *generator {
	return &generator{r: rand.New(rand.NewPCG(seed, seed^0x6a09e667f3bcc908))}
}

// nat returns a random normalized n-limb value.
func (g *generator) nat(n int) nat.Nat {
	z := make(nat.Nat, n)
	for i := range z {
		z[i] = arith.Word(g.r.Uint64())
	}
	if n > 0 {
		z[n-1] |= 1
	}
	return z
}

// String renders a one-line summary of the result.
func (r Result) String() string {
	state := "measured"
	if !r.Found {
		state = "kept"
	}
	return fmt.Sprintf("%s: %d limbs (%s, %d sizes)", r.Band.Name, r.Crossover, state, len(r.Measurements))
}
