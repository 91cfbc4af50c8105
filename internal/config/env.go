// This file contains environment variable utilities for threshold override.

package config

import (
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// EnvPrefix is prepended to every environment key read by this package.
const EnvPrefix = "BIGNUM_"

// ProfileEnvKey names the variable holding the calibration profile path.
const ProfileEnvKey = "THRESHOLD_PROFILE"

// LookupFunc resolves an environment key. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// layered returns a LookupFunc that consults each source in order.
func layered(sources ...LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		for _, src := range sources {
			if src == nil {
				continue
			}
			if v, ok := src(key); ok && v != "" {
				return v, true
			}
		}
		return "", false
	}
}

// mapLookup adapts a map (such as the result of godotenv.Read).
func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// getEnvString returns the value of the prefixed key, or defaultVal.
func getEnvString(lookup LookupFunc, key, defaultVal string) string {
	if val, ok := lookup(EnvPrefix + key); ok && val != "" {
		return strings.TrimSpace(val)
	}
	return defaultVal
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the BIGNUM_ prefix) to the threshold
// field it sets.
type envOverride struct {
	envKey string
	field  func(*Thresholds) *int
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"TOOM22_THRESHOLD", func(t *Thresholds) *int { return &t.Toom22 }},
	{"TOOM33_THRESHOLD", func(t *Thresholds) *int { return &t.Toom33 }},
	{"TOOM44_THRESHOLD", func(t *Thresholds) *int { return &t.Toom44 }},
	{"TOOM6H_THRESHOLD", func(t *Thresholds) *int { return &t.Toom6H }},
	{"TOOM8H_THRESHOLD", func(t *Thresholds) *int { return &t.Toom8H }},
	{"FFT_THRESHOLD", func(t *Thresholds) *int { return &t.FFT }},
	{"FFT_SQUARE_THRESHOLD", func(t *Thresholds) *int { return &t.FFTSquare }},
	{"DIV_NEWTON_THRESHOLD", func(t *Thresholds) *int { return &t.DivNewton }},
	{"DIV_NEWTON_QUOTIENT_THRESHOLD", func(t *Thresholds) *int { return &t.DivNewtonQuotient }},
	{"GCD_LEHMER_THRESHOLD", func(t *Thresholds) *int { return &t.GCDLehmer }},
	{"TO_STRING_DC_THRESHOLD", func(t *Thresholds) *int { return &t.ToStringDivideAndConquer }},
}

// EnvKeys lists every recognised override variable, prefix included.
func EnvKeys() []string {
	keys := make([]string, 0, len(envOverrides)+1)
	for _, o := range envOverrides {
		keys = append(keys, EnvPrefix+o.envKey)
	}
	return append(keys, EnvPrefix+ProfileEnvKey)
}

// applyEnvOverrides sets every threshold named by lookup and returns the keys
// that were applied. A value that is not a non-negative integer is a
// configuration error.
func applyEnvOverrides(t *Thresholds, lookup LookupFunc) ([]string, error) {
	var applied []string
	for _, o := range envOverrides {
		key := EnvPrefix + o.envKey
		val, ok := lookup(key)
		if !ok || val == "" {
			continue
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil || parsed < 0 {
			return applied, apperrors.NewConfigError("%s: invalid limb count %q", key, val)
		}
		*o.field(t) = parsed
		applied = append(applied, key)
	}
	return applied, nil
}

var osLookup LookupFunc = os.LookupEnv
