package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"

	"github.com/agbru/bignum/internal/logging"
)

// DefaultEnvFile is read when Loader.EnvFile is empty.
const DefaultEnvFile = ".env"

// Loader resolves the threshold table from the environment, a .env file and
// a calibration profile. The zero value reads the process environment.
type Loader struct {
	// Logger receives a debug line naming the source that won.
	Logger logging.Logger
	// EnvFile is the dotenv file to consult. Missing files are ignored.
	EnvFile string
	// ProfilePath is used when BIGNUM_THRESHOLD_PROFILE is unset.
	ProfilePath string
	// Lookup replaces os.LookupEnv, mainly for tests.
	Lookup LookupFunc
}

// Load returns the validated threshold table.
func (l Loader) Load() (Thresholds, error) {
	logger := l.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	lookup := l.Lookup
	if lookup == nil {
		lookup = osLookup
	}

	envFile := l.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Thresholds{}, err
		}
		dotenv = nil
	}
	lookup = layered(lookup, mapLookup(dotenv))

	t := DefaultThresholds()

	if path := getEnvString(lookup, ProfileEnvKey, l.ProfilePath); path != "" {
		p, err := LoadProfile(path)
		switch {
		case err != nil:
			logger.Error("threshold profile ignored", err, logging.String("path", path))
		case !p.IsValid():
			logger.Info("threshold profile incompatible with this machine", logging.String("path", path))
		default:
			t = p.Resolved()
		}
	}

	applied, err := applyEnvOverrides(&t, lookup)
	if err != nil {
		return Thresholds{}, err
	}
	if len(applied) > 0 {
		t.Provenance.Source = SourceEnv
	}
	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}
	logger.Debug("thresholds resolved",
		logging.String("source", string(t.Provenance.Source)),
		logging.Int("overrides", len(applied)),
		logging.Int("fft", t.FFT))
	return t, nil
}
