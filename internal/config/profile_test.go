package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/agbru/bignum/internal/arith"
)

func TestNewProfile(t *testing.T) {
	t.Parallel()
	profile := NewProfile()

	if profile.NumCPU != runtime.NumCPU() {
		t.Errorf("NumCPU = %d, want %d", profile.NumCPU, runtime.NumCPU())
	}
	if profile.GOARCH != runtime.GOARCH {
		t.Errorf("GOARCH = %s, want %s", profile.GOARCH, runtime.GOARCH)
	}
	if profile.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %s, want %s", profile.GoVersion, runtime.Version())
	}
	if profile.ProfileVersion != CurrentProfileVersion {
		t.Errorf("ProfileVersion = %d, want %d", profile.ProfileVersion, CurrentProfileVersion)
	}
	if profile.WordSize != arith.W {
		t.Errorf("WordSize = %d, want %d", profile.WordSize, arith.W)
	}
	if profile.CalibratedAt.IsZero() {
		t.Error("CalibratedAt is zero")
	}
}

func TestProfileSaveLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "profile.json")

	original := NewProfile()
	original.Thresholds.Toom22 = 30
	original.Thresholds.FFT = 3000
	original.Duration = "1m30s"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if loaded.Thresholds.Toom22 != 30 || loaded.Thresholds.FFT != 3000 {
		t.Errorf("thresholds not round-tripped: %v", loaded.Thresholds)
	}
	if loaded.NumCPU != original.NumCPU || loaded.Duration != original.Duration {
		t.Errorf("metadata not round-tripped: %+v", loaded)
	}

	resolved := loaded.Resolved()
	if resolved.Provenance.Source != SourceProfile {
		t.Errorf("source = %q, want %q", resolved.Provenance.Source, SourceProfile)
	}
	if resolved.Provenance.GoVersion != runtime.Version() {
		t.Errorf("go version = %q", resolved.Provenance.GoVersion)
	}
}

func TestProfileIsValid(t *testing.T) {
	t.Parallel()
	if !NewProfile().IsValid() {
		t.Error("expected fresh profile to be valid")
	}

	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"wrong cpu count", func(p *Profile) { p.NumCPU = 999 }},
		{"wrong arch", func(p *Profile) { p.GOARCH = "invalid_arch" }},
		{"wrong word size", func(p *Profile) { p.WordSize = 16 }},
		{"wrong version", func(p *Profile) { p.ProfileVersion = 999 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewProfile()
			tt.mutate(p)
			if p.IsValid() {
				t.Error("expected profile to be invalid")
			}
		})
	}

	var nilProfile *Profile
	if nilProfile.IsValid() {
		t.Error("expected nil profile to be invalid")
	}
}

func TestProfileIsStale(t *testing.T) {
	t.Parallel()
	profile := NewProfile()
	if profile.IsStale(time.Hour) {
		t.Error("expected fresh profile to not be stale")
	}
	profile.CalibratedAt = time.Now().Add(-2 * time.Hour)
	if !profile.IsStale(time.Hour) {
		t.Error("expected old profile to be stale")
	}
	var nilProfile *Profile
	if !nilProfile.IsStale(time.Hour) {
		t.Error("expected nil profile to be stale")
	}
}

func TestLoadProfileErrors(t *testing.T) {
	t.Parallel()
	if _, err := LoadProfile("/nonexistent/path/to/profile.json"); err == nil {
		t.Error("expected error loading nonexistent profile")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.json")
	if err := os.WriteFile(invalid, []byte("not valid json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfile(invalid); err == nil {
		t.Error("expected error loading invalid JSON")
	}
}

func TestLoadOrCreateProfile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "profile.json")

	profile, loaded := LoadOrCreateProfile(path)
	if loaded {
		t.Error("expected loaded to be false for nonexistent file")
	}
	profile.Thresholds.Toom33 = 90
	if err := profile.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	profile2, loaded2 := LoadOrCreateProfile(path)
	if !loaded2 {
		t.Error("expected loaded to be true for existing file")
	}
	if profile2.Thresholds.Toom33 != 90 {
		t.Errorf("loaded profile has wrong threshold: %d", profile2.Thresholds.Toom33)
	}
}

func TestDefaultProfilePath(t *testing.T) {
	t.Parallel()
	if got := filepath.Base(DefaultProfilePath()); got != DefaultProfileFileName {
		t.Errorf("DefaultProfilePath base = %s, want %s", got, DefaultProfileFileName)
	}
}

func TestProfileString(t *testing.T) {
	t.Parallel()
	if s := NewProfile().String(); len(s) < 50 {
		t.Errorf("String() seems too short: %s", s)
	}
}
