package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of lipgloss colors for terminal output.
type Theme struct {
	// Name is the identifier of the theme.
	Name    string
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTheme is the orange-dominant palette for dark backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#FF6600"),
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// LightTheme uses darker tones for light backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Text:    lipgloss.Color("#202020"),
		Border:  lipgloss.Color("#B34700"),
		Accent:  lipgloss.Color("#005FAF"),
		Success: lipgloss.Color("#008700"),
		Warning: lipgloss.Color("#AF5F00"),
		Error:   lipgloss.Color("#AF0000"),
		Dim:     lipgloss.Color("#808080"),
	}

	// NoColorTheme renders with the terminal's default colors.
	NoColorTheme = Theme{
		Name:    "none",
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme; tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "dark", "light" or "none". Unknown
// names select the dark theme.
func SetTheme(name string) {
	switch name {
	case "light":
		SetCurrentTheme(LightTheme)
	case "none":
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme picks the theme from the --no-color flag and the NO_COLOR
// environment variable (https://no-color.org/); any value disables color.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

// ─────────────────────────────────────────────────────────────────────────────
// Styles
// ─────────────────────────────────────────────────────────────────────────────

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Success lipgloss.Style
	Dim     lipgloss.Style
	Error   lipgloss.Style
	Border  lipgloss.Style
}

// CurrentStyles returns the styles of the active theme.
func CurrentStyles() Styles {
	t := GetCurrentTheme()
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Header:  cell.Bold(true).Foreground(t.Text),
		Cell:    cell.Foreground(t.Text),
		Success: cell.Foreground(t.Success),
		Dim:     cell.Foreground(t.Dim),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Border:  lipgloss.NewStyle().Foreground(t.Border),
	}
}
