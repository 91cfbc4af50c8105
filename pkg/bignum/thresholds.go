package bignum

import (
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/nat"
)

// LoadThresholds resolves the algorithm crossover table from BIGNUM_*
// environment variables, a .env file in the working directory and the
// calibration profile named by BIGNUM_THRESHOLD_PROFILE, and installs it
// for all later operations. Until it is called the built-in word-size
// estimates apply and nothing is read from disk.
func LoadThresholds() error {
	t, err := config.Loader{}.Load()
	if err != nil {
		return err
	}
	_, err = nat.SetThresholds(t)
	return err
}
