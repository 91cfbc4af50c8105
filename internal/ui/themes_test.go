package ui

import (
	"strings"
	"testing"
)

// These tests change the process-wide theme and are not parallel.

func TestSetTheme(t *testing.T) {
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })

	tests := []struct {
		name, want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) -> %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })

	InitTheme(true)
	if GetCurrentTheme().Name != "none" {
		t.Error("--no-color should select the none theme")
	}

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Error("NO_COLOR should select the none theme")
	}
}

func TestCurrentStylesRenderPlainText(t *testing.T) {
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })

	SetCurrentTheme(NoColorTheme)
	s := CurrentStyles()
	if got := s.Title.Render("Thresholds"); !strings.Contains(got, "Thresholds") {
		t.Errorf("Title.Render = %q", got)
	}
}
