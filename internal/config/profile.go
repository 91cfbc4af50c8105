package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/agbru/bignum/internal/arith"
)

// CurrentProfileVersion is bumped whenever the profile layout changes.
const CurrentProfileVersion = 1

// DefaultProfileFileName is the file name used under the user's home directory.
const DefaultProfileFileName = ".bignum_thresholds.json"

// Profile is a persisted calibration result together with the hardware it
// was measured on.
type Profile struct {
	ProfileVersion int        `json:"profile_version"`
	GOOS           string     `json:"goos"`
	GOARCH         string     `json:"goarch"`
	GoVersion      string     `json:"go_version"`
	NumCPU         int        `json:"num_cpu"`
	WordSize       int        `json:"word_size"`
	CPUFeatures    string     `json:"cpu_features"`
	CalibratedAt   time.Time  `json:"calibrated_at"`
	Duration       string     `json:"duration,omitempty"`
	MaxLimbs       int        `json:"max_limbs,omitempty"`
	Thresholds     Thresholds `json:"thresholds"`
}

// NewProfile returns a profile describing the current machine, seeded with
// the default thresholds.
func NewProfile() *Profile {
	return &Profile{
		ProfileVersion: CurrentProfileVersion,
		GOOS:           runtime.GOOS,
		GOARCH:         runtime.GOARCH,
		GoVersion:      runtime.Version(),
		NumCPU:         runtime.NumCPU(),
		WordSize:       arith.W,
		CPUFeatures:    arith.DetectCPUFeatures().String(),
		CalibratedAt:   time.Now(),
		Thresholds:     DefaultThresholds(),
	}
}

// IsValid reports whether the profile was produced by a compatible build on
// hardware like this one.
func (p *Profile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == arith.W &&
		p.NumCPU == runtime.NumCPU()
}

// IsStale reports whether the profile is older than maxAge.
func (p *Profile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// Resolved returns the thresholds stamped with the profile's provenance.
func (p *Profile) Resolved() Thresholds {
	t := p.Thresholds
	t.Provenance = Provenance{
		Source:     SourceProfile,
		Machine:    fmt.Sprintf("%s/%s %s", p.GOOS, p.GOARCH, p.CPUFeatures),
		GoVersion:  p.GoVersion,
		WordBits:   p.WordSize,
		MeasuredAt: p.CalibratedAt,
	}
	return t
}

// Save writes the profile as indented JSON, creating parent directories.
func (p *Profile) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating profile directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// LoadProfile reads a profile from path. It does not check compatibility.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding profile %s: %w", path, err)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path or returns a fresh one.
// The boolean reports whether a compatible profile was loaded.
func LoadOrCreateProfile(path string) (*Profile, bool) {
	p, err := LoadProfile(path)
	if err != nil || !p.IsValid() {
		return NewProfile(), false
	}
	return p, true
}

// DefaultProfilePath returns the profile location in the home directory,
// falling back to the working directory.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// String summarises the profile for display.
func (p *Profile) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Calibration profile v%d (%s/%s, %d CPUs, %d-bit words, %s)\n",
		p.ProfileVersion, p.GOOS, p.GOARCH, p.NumCPU, p.WordSize, p.CPUFeatures)
	fmt.Fprintf(&b, "  calibrated at %s with %s\n", p.CalibratedAt.Format(time.RFC3339), p.GoVersion)
	fmt.Fprintf(&b, "  %s", p.Thresholds)
	return b.String()
}
