package config

import (
	"fmt"
	"math/bits"
	"time"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// Threshold resolution chain (highest priority first):
//   1. Environment variables (BIGNUM_TOOM22_THRESHOLD, etc.)
//   2. A .env file in the working directory
//   3. A calibration profile (BIGNUM_THRESHOLD_PROFILE)
//   4. Word-size estimates (this file)

// Source identifies where a threshold table came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceProfile Source = "profile"
	SourceEnv     Source = "env"
	SourceManual  Source = "manual"
)

// Provenance records how a threshold table was obtained.
type Provenance struct {
	Source     Source    `json:"source"`
	Machine    string    `json:"machine,omitempty"`
	GoVersion  string    `json:"go_version,omitempty"`
	WordBits   int       `json:"word_bits"`
	MeasuredAt time.Time `json:"measured_at,omitempty"`
}

// Thresholds is the table of algorithm crossovers. Every value is a limb
// count: an operation switches to the faster algorithm once the relevant
// operand reaches the value.
type Thresholds struct {
	// Multiplication bands, keyed on the shorter operand.
	Toom22 int `json:"toom22"`
	Toom33 int `json:"toom33"`
	Toom44 int `json:"toom44"`
	Toom6H int `json:"toom6h"`
	Toom8H int `json:"toom8h"`
	FFT    int `json:"fft"`

	// FFTSquare is the FFT crossover for squaring.
	FFTSquare int `json:"fft_square"`

	// DivNewton is the divisor length above which the reciprocal based
	// division is used. DivNewtonQuotient is the minimum quotient length
	// for the same switch.
	DivNewton         int `json:"div_newton"`
	DivNewtonQuotient int `json:"div_newton_quotient"`

	// GCDLehmer is the operand length above which Lehmer steps replace the
	// binary algorithm.
	GCDLehmer int `json:"gcd_lehmer"`

	// ToStringDivideAndConquer is the length above which decimal
	// conversion splits by powers of the base.
	ToStringDivideAndConquer int `json:"to_string_dc"`

	Provenance Provenance `json:"provenance"`
}

// DefaultThresholds returns the estimates for the native word size.
func DefaultThresholds() Thresholds {
	return EstimateThresholds(bits.UintSize)
}

// EstimateThresholds returns conservative estimates for the given word
// size. They are not measurements: their provenance carries only the
// default source and word size, and a profile written by bignum-calibrate
// run replaces them with crossovers timed on the host. Narrower limbs make
// each limb product cheaper relative to bookkeeping, so the 32-bit bands
// sit higher.
func EstimateThresholds(wordBits int) Thresholds {
	t := Thresholds{
		Toom22:                   24,
		Toom33:                   80,
		Toom44:                   200,
		Toom6H:                   400,
		Toom8H:                   800,
		FFT:                      2500,
		FFTSquare:                2200,
		DivNewton:                120,
		DivNewtonQuotient:        60,
		GCDLehmer:                16,
		ToStringDivideAndConquer: 30,
		Provenance: Provenance{
			Source:   SourceDefault,
			WordBits: wordBits,
		},
	}
	if wordBits == 32 {
		t.Toom22 = 32
		t.Toom33 = 100
		t.Toom44 = 260
		t.Toom6H = 520
		t.Toom8H = 1000
		t.FFT = 4000
		t.FFTSquare = 3500
		t.DivNewton = 160
		t.DivNewtonQuotient = 80
		t.GCDLehmer = 24
		t.ToStringDivideAndConquer = 40
	}
	return t
}

// Minimum values below which an algorithm is outside its valid band.
const (
	MinToom22    = 4
	MinFFT       = 64
	MinDivNewton = 4
	MinGCDLehmer = 2
	MinToString  = 2
)

// Validate checks that the bands are monotone and every algorithm stays
// inside the operand sizes it supports.
func (t Thresholds) Validate() error {
	if t.Toom22 < MinToom22 {
		return apperrors.NewConfigError("toom22 threshold %d is below minimum %d", t.Toom22, MinToom22)
	}
	bands := []struct {
		name string
		v    int
	}{
		{"toom22", t.Toom22},
		{"toom33", t.Toom33},
		{"toom44", t.Toom44},
		{"toom6h", t.Toom6H},
		{"toom8h", t.Toom8H},
		{"fft", t.FFT},
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].v < bands[i-1].v {
			return apperrors.NewConfigError("%s threshold %d is below %s threshold %d",
				bands[i].name, bands[i].v, bands[i-1].name, bands[i-1].v)
		}
	}
	if t.FFT < MinFFT {
		return apperrors.NewConfigError("fft threshold %d is below minimum %d", t.FFT, MinFFT)
	}
	if t.FFTSquare < max(t.Toom8H, MinFFT) {
		return apperrors.NewConfigError("fft square threshold %d is below %d", t.FFTSquare, max(t.Toom8H, MinFFT))
	}
	if t.DivNewton < MinDivNewton {
		return apperrors.NewConfigError("div newton threshold %d is below minimum %d", t.DivNewton, MinDivNewton)
	}
	if t.DivNewtonQuotient < 1 {
		return apperrors.NewConfigError("div newton quotient threshold %d must be positive", t.DivNewtonQuotient)
	}
	if t.GCDLehmer < MinGCDLehmer {
		return apperrors.NewConfigError("gcd lehmer threshold %d is below minimum %d", t.GCDLehmer, MinGCDLehmer)
	}
	if t.ToStringDivideAndConquer < MinToString {
		return apperrors.NewConfigError("to-string threshold %d is below minimum %d", t.ToStringDivideAndConquer, MinToString)
	}
	return nil
}

// String renders the table on one line.
func (t Thresholds) String() string {
	return fmt.Sprintf("toom22=%d toom33=%d toom44=%d toom6h=%d toom8h=%d fft=%d fft_sqr=%d div_newton=%d/%d gcd_lehmer=%d to_string=%d (%s)",
		t.Toom22, t.Toom33, t.Toom44, t.Toom6H, t.Toom8H, t.FFT, t.FFTSquare,
		t.DivNewton, t.DivNewtonQuotient, t.GCDLehmer, t.ToStringDivideAndConquer, t.Provenance.Source)
}
