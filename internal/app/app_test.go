package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
)

func fakeEnv(m map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// newTestApp returns an application isolated from the process environment
// and the working directory's .env file.
func newTestApp(t *testing.T, env map[string]string) (*Application, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := New(&out, &errOut,
		WithLookup(fakeEnv(env)),
		WithEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	return a, &out, &errOut
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperrors.ExitSuccess},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric},
		{"config", apperrors.NewConfigError("bad"), apperrors.ExitErrorConfig},
		{"mismatch", apperrors.WrapError(apperrors.MismatchError{Operation: "mul"}, "ctx"), apperrors.ExitErrorMismatch},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestShowDefaults(t *testing.T) {
	t.Parallel()
	a, out, _ := newTestApp(t, nil)
	code := a.Run(context.Background(), []string{"show", "--profile", filepath.Join(t.TempDir(), "none.json")})
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out.String(), "source: default")
	assert.Contains(t, out.String(), "toom22")
}

func TestShowEnvOverride(t *testing.T) {
	t.Parallel()
	a, out, _ := newTestApp(t, map[string]string{"BIGNUM_GCD_LEHMER_THRESHOLD": "9"})
	code := a.Run(context.Background(), []string{"show", "--profile", filepath.Join(t.TempDir(), "none.json")})
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out.String(), "source: env")
}

func TestShowInvalidEnv(t *testing.T) {
	t.Parallel()
	a, _, errOut := newTestApp(t, map[string]string{"BIGNUM_FFT_THRESHOLD": "lots"})
	code := a.Run(context.Background(), []string{"show"})
	assert.Equal(t, apperrors.ExitErrorConfig, code)
	assert.Contains(t, errOut.String(), "BIGNUM_FFT_THRESHOLD")
}

func TestInvalidLogLevel(t *testing.T) {
	t.Parallel()
	a, _, _ := newTestApp(t, nil)
	assert.Equal(t, apperrors.ExitErrorConfig, a.Run(context.Background(), []string{"show", "--log-level", "loud"}))
}

func TestRunUnknownBand(t *testing.T) {
	t.Parallel()
	a, _, errOut := newTestApp(t, nil)
	code := a.Run(context.Background(), []string{"run", "--bands", "toom99", "-q"})
	assert.Equal(t, apperrors.ExitErrorConfig, code)
	assert.Contains(t, errOut.String(), "toom99")
}

func TestRunWritesProfileAndMetrics(t *testing.T) {
	if testing.Short() {
		t.Skip("calibration timing skipped in short mode")
	}
	t.Parallel()
	dir := t.TempDir()
	profile := filepath.Join(dir, "profile.json")
	prom := filepath.Join(dir, "bignum.prom")

	a, out, _ := newTestApp(t, nil)
	code := a.Run(context.Background(), []string{
		"run", "--quick", "--bands", "gcd_lehmer", "--max-limbs", "24",
		"--seed", "1", "--profile", profile, "--metrics-file", prom, "-q",
	})
	require.Equal(t, apperrors.ExitSuccess, code, out.String())
	assert.Contains(t, out.String(), "gcd_lehmer")

	p, err := config.LoadProfile(profile)
	require.NoError(t, err)
	assert.True(t, p.IsValid())
	assert.Equal(t, 24, p.MaxLimbs)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "bignum_threshold_limbs"))
}

func TestRunDryRunLeavesNoProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("calibration timing skipped in short mode")
	}
	t.Parallel()
	profile := filepath.Join(t.TempDir(), "profile.json")
	a, out, _ := newTestApp(t, nil)
	code := a.Run(context.Background(), []string{
		"run", "--quick", "--bands", "toom22", "--max-limbs", "16", "--dry-run", "--profile", profile, "-q",
	})
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.NoFileExists(t, profile)
	assert.Contains(t, out.String(), "source: profile")
}

// verify installs a process-wide dispatch observer, so it is not parallel.
func TestVerify(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "dispatch.prom")
	a, out, _ := newTestApp(t, nil)
	code := a.Run(context.Background(), []string{
		"verify", "--limbs", "1,5,40", "--cases", "1", "--seed", "3", "--metrics-file", prom, "-q",
	})
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out.String(), "All algorithms agree")

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `bignum_dispatch_total{algorithm="toom33",op="mul"}`)
}

func TestVerifyRejectsBadFlags(t *testing.T) {
	t.Parallel()
	a, _, _ := newTestApp(t, nil)
	assert.Equal(t, apperrors.ExitErrorConfig, a.Run(context.Background(), []string{"verify", "--cases", "0", "-q"}))
	a, _, _ = newTestApp(t, nil)
	assert.Equal(t, apperrors.ExitErrorConfig, a.Run(context.Background(), []string{"verify", "--limbs", "0", "-q"}))
}

func TestVersionFlag(t *testing.T) {
	t.Parallel()
	a, out, _ := newTestApp(t, nil)
	require.Equal(t, apperrors.ExitSuccess, a.Run(context.Background(), []string{"--version"}))
	assert.Contains(t, out.String(), "bignum-calibrate "+Version)
}

func TestRunInvalidGCMode(t *testing.T) {
	t.Parallel()
	a, _, errOut := newTestApp(t, nil)
	assert.Equal(t, apperrors.ExitErrorConfig, a.Run(context.Background(), []string{"run", "--gc", "sometimes", "-q"}))
	assert.Contains(t, errOut.String(), "--gc")
}

func TestRunRejectsInvalidEnvOverride(t *testing.T) {
	t.Parallel()
	a, _, errOut := newTestApp(t, map[string]string{"BIGNUM_TOOM22_THRESHOLD": "x"})
	code := a.Run(context.Background(), []string{"run", "--quick", "--bands", "toom22", "--dry-run", "-q"})
	assert.Equal(t, apperrors.ExitErrorConfig, code)
	assert.Contains(t, errOut.String(), "BIGNUM_TOOM22_THRESHOLD")
}
