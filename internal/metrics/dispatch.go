package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/bignum/internal/nat"
)

// Namespace prefixes every metric exported by this package.
const Namespace = "bignum"

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch Metrics
// ─────────────────────────────────────────────────────────────────────────────

// DispatchCollector counts the algorithm chosen for each top-level
// multiplication, squaring, division and GCD. It implements nat.Observer;
// install it with nat.SetObserver.
type DispatchCollector struct {
	selections *prometheus.CounterVec
	limbs      *prometheus.HistogramVec
}

// NewDispatchCollector creates the collector and registers it with reg.
// A nil reg leaves the metrics unregistered.
func NewDispatchCollector(reg prometheus.Registerer) (*DispatchCollector, error) {
	c := &DispatchCollector{
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "dispatch_total",
			Help:      "Top-level algorithm selections by operation and algorithm.",
		}, []string{"op", "algorithm"}),
		limbs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "dispatch_operand_limbs",
			Help:      "Size in limbs of the operand that drove the selection.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"op"}),
	}
	if reg != nil {
		for _, col := range []prometheus.Collector{c.selections, c.limbs} {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Observe implements nat.Observer.
func (c *DispatchCollector) Observe(op nat.Op, alg nat.Algorithm, limbs int) {
	c.selections.WithLabelValues(string(op), alg.String()).Inc()
	c.limbs.WithLabelValues(string(op)).Observe(float64(limbs))
}

// Selections returns the counter for one (op, algorithm) pair.
func (c *DispatchCollector) Selections(op nat.Op, alg nat.Algorithm) prometheus.Counter {
	return c.selections.WithLabelValues(string(op), alg.String())
}

// Describe implements prometheus.Collector.
func (c *DispatchCollector) Describe(ch chan<- *prometheus.Desc) {
	c.selections.Describe(ch)
	c.limbs.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *DispatchCollector) Collect(ch chan<- prometheus.Metric) {
	c.selections.Collect(ch)
	c.limbs.Collect(ch)
}

// ─────────────────────────────────────────────────────────────────────────────
// Calibration Metrics
// ─────────────────────────────────────────────────────────────────────────────

// CalibrationGauges exposes the measured crossovers and per-size timings of
// a calibration run.
type CalibrationGauges struct {
	Crossover *prometheus.GaugeVec
	Duration  *prometheus.GaugeVec
}

// NewCalibrationGauges creates the gauges and registers them with reg.
func NewCalibrationGauges(reg prometheus.Registerer) (*CalibrationGauges, error) {
	g := &CalibrationGauges{
		Crossover: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "threshold_limbs",
			Help:      "Measured crossover in limbs for each algorithm band.",
		}, []string{"band"}),
		Duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "calibration_seconds",
			Help:      "Time per operation measured during calibration.",
		}, []string{"band", "algorithm", "limbs"}),
	}
	if reg != nil {
		for _, col := range []prometheus.Collector{g.Crossover, g.Duration} {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// SetDuration records the time of one algorithm at one size.
func (g *CalibrationGauges) SetDuration(band string, alg nat.Algorithm, limbs int, seconds float64) {
	g.Duration.WithLabelValues(band, alg.String(), strconv.Itoa(limbs)).Set(seconds)
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text exposition format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
