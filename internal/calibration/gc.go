package calibration

import (
	"math"
	"runtime"
	"runtime/debug"

	"github.com/agbru/bignum/internal/logging"
)

// GCMode controls the garbage collector during a calibration run.
type GCMode string

const (
	// GCModeAuto disables collection only when the largest measured
	// operand reaches GCAutoLimbs, where a collection inside the timing
	// window would dominate the measurement.
	GCModeAuto GCMode = "auto"
	// GCModeDisabled disables collection for every band.
	GCModeDisabled GCMode = "disabled"
	// GCModeOn leaves the collector alone.
	GCModeOn GCMode = "on"
)

// GCAutoLimbs is the operand size from which GCModeAuto takes effect.
const GCAutoLimbs = 1000

// ParseGCMode validates a --gc flag value.
func ParseGCMode(s string) (GCMode, bool) {
	switch m := GCMode(s); m {
	case GCModeAuto, GCModeDisabled, GCModeOn:
		return m, true
	case "":
		return GCModeAuto, true
	}
	return "", false
}

// gcGuard suspends garbage collection around a timing window and restores
// it afterwards. A soft memory limit of three times the current footprint
// stays in place as an out-of-memory safety net.
type gcGuard struct {
	active  bool
	percent int
	start   runtime.MemStats
	logger  logging.Logger
}

func newGCGuard(mode GCMode, maxLimbs int, logger logging.Logger) *gcGuard {
	g := &gcGuard{logger: logger}
	switch mode {
	case GCModeDisabled:
		g.active = true
	case GCModeAuto, "":
		g.active = maxLimbs >= GCAutoLimbs
	}
	return g
}

func (g *gcGuard) begin() {
	if !g.active {
		return
	}
	runtime.GC()
	runtime.ReadMemStats(&g.start)
	g.percent = debug.SetGCPercent(-1)
	if limit := int64(float64(g.start.Sys) * 3); limit > 0 {
		debug.SetMemoryLimit(limit)
	}
	g.logger.Debug("gc disabled", logging.Uint64("heap_alloc_bytes", g.start.HeapAlloc))
}

func (g *gcGuard) end() {
	if !g.active {
		return
	}
	var end runtime.MemStats
	runtime.ReadMemStats(&end)
	debug.SetGCPercent(g.percent)
	debug.SetMemoryLimit(math.MaxInt64)
	runtime.GC()
	g.logger.Debug("gc re-enabled",
		logging.Uint64("total_alloc_bytes", end.TotalAlloc-g.start.TotalAlloc),
		logging.Int("gc_cycles", int(end.NumGC-g.start.NumGC)))
}
