package nat

import (
	"sync/atomic"

	"github.com/agbru/bignum/internal/config"
)

var thresholdsPtr atomic.Pointer[config.Thresholds]

// Thresholds returns the active crossover table: the word-size defaults
// until SetThresholds installs another one. The engine never reads the
// environment or files itself; profiles and BIGNUM_* overrides are loaded
// with config.Loader and installed by the caller.
func Thresholds() config.Thresholds {
	return *thresholds()
}

// SetThresholds validates t and installs it as the active table, returning
// the previous one. Concurrent arithmetic observes either table in full.
func SetThresholds(t config.Thresholds) (config.Thresholds, error) {
	if err := t.Validate(); err != nil {
		return config.Thresholds{}, err
	}
	prev := thresholds()
	thresholdsPtr.Store(&t)
	return *prev, nil
}

func thresholds() *config.Thresholds {
	if p := thresholdsPtr.Load(); p != nil {
		return p
	}
	d := config.DefaultThresholds()
	thresholdsPtr.CompareAndSwap(nil, &d)
	return thresholdsPtr.Load()
}
