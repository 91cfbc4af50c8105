package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/agbru/bignum/internal/calibration"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
)

type runOptions struct {
	maxLimbs    int
	quick       bool
	parallel    bool
	bands       []string
	metricsFile string
	seed        uint64
	dryRun      bool
	gc          string
}

func (a *Application) runCommand() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure algorithm crossovers and write a threshold profile",
		Long: `Times both algorithms of every band on random operands of increasing size.
A crossover is accepted once the faster algorithm wins on ` + fmt.Sprint(calibration.Streak) + ` consecutive
sizes. Both algorithms must agree on every operand pair; a disagreement
aborts the run with exit code 3.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCalibration(cmd, o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.maxLimbs, "max-limbs", 0, "largest operand measured (default 4x the FFT threshold)")
	f.BoolVar(&o.quick, "quick", false, "coarser size ladder and shorter timing window")
	f.BoolVar(&o.parallel, "parallel", false, "measure independent bands concurrently")
	f.StringSliceVar(&o.bands, "bands", nil, "bands to measure (default all): "+strings.Join(bandNames(), ","))
	f.StringVar(&o.metricsFile, "metrics-file", "", "write timings in Prometheus textfile format")
	f.Uint64Var(&o.seed, "seed", uint64(time.Now().UnixNano()), "operand generator seed")
	f.StringVar(&o.gc, "gc", string(calibration.GCModeAuto), "garbage collector while timing (auto, disabled, on)")
	f.BoolVar(&o.dryRun, "dry-run", false, "print the result without writing the profile")
	return cmd
}

func bandNames() []string {
	bands := calibration.Bands()
	names := make([]string, len(bands))
	for i, b := range bands {
		names[i] = b.Name
	}
	return names
}

func (a *Application) runCalibration(cmd *cobra.Command, o runOptions) error {
	bands, unknown := calibration.Select(o.bands)
	if len(unknown) > 0 {
		return apperrors.NewConfigError("unknown band(s) %s; valid: %s", strings.Join(unknown, ","), strings.Join(bandNames(), ","))
	}
	gc, ok := calibration.ParseGCMode(o.gc)
	if !ok {
		return apperrors.NewConfigError("invalid --gc %q; valid: auto, disabled, on", o.gc)
	}
	if o.maxLimbs < 0 {
		return apperrors.NewConfigError("--max-limbs must not be negative")
	}

	// Bands left out of --bands keep the values already in effect.
	if err := a.installThresholds(); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	gauges, err := metrics.NewCalibrationGauges(reg)
	if err != nil {
		return err
	}

	sp := a.progressSpinner()
	sp.Start()
	r := &calibration.Runner{
		Logger:   a.logger,
		Gauges:   gauges,
		Bands:    bands,
		MaxLimbs: o.maxLimbs,
		Quick:    o.quick,
		Parallel: o.parallel,
		Seed:     o.seed,
		GC:       gc,
		Progress: func(band string, done, total int) {
			sp.UpdateSuffix(fmt.Sprintf(" %s %d/%d", band, done, total))
		},
	}
	profile, results, err := r.Run(cmd.Context())
	sp.Stop()
	if err != nil {
		var mismatch apperrors.MismatchError
		if errors.As(err, &mismatch) {
			calibration.PrintMismatch(a.Out, err)
		}
		return err
	}

	calibration.PrintSummary(a.Out, results)

	if o.metricsFile != "" {
		if err := metrics.WriteTextfile(o.metricsFile, reg); err != nil {
			return apperrors.WrapError(err, "writing metrics file")
		}
		a.logger.Info("metrics written", logging.String("path", o.metricsFile))
	}
	if o.dryRun {
		calibration.PrintThresholds(a.Out, profile.Resolved())
		return nil
	}
	path := a.resolvedProfilePath()
	if err := profile.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Profile written to %s\n", path)
	return nil
}
