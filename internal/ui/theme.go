// Package ui holds the ANSI color themes shared by the CLI and the error
// handler.
package ui

import (
	"os"
	"sync"
)

// Theme maps output roles to ANSI escape codes.
type Theme struct {
	Name string
	// Heading is used for section titles and labels.
	Heading string
	// Value highlights computed results.
	Value string
	// Muted is used for secondary text such as timings and ∞ entries.
	Muted   string
	Success string
	Warning string
	Error   string
	Bold    string
	Reset   string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Heading: "\033[38;5;39m",
		Value:   "\033[38;5;141m",
		Muted:   "\033[38;5;245m",
		Success: "\033[38;5;82m",
		Warning: "\033[38;5;220m",
		Error:   "\033[38;5;196m",
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:    "light",
		Heading: "\033[38;5;27m",
		Value:   "\033[38;5;54m",
		Muted:   "\033[38;5;240m",
		Success: "\033[38;5;28m",
		Warning: "\033[38;5;130m",
		Error:   "\033[38;5;124m",
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// NoColorTheme emits no escape codes.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetTheme activates the theme called name ("dark", "light" or "none").
// Unknown names select the dark theme.
func SetTheme(name string) {
	t := DarkTheme
	switch name {
	case "light":
		t = LightTheme
	case "none":
		t = NoColorTheme
	}
	SetCurrentTheme(t)
}

// SetCurrentTheme activates t.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme disables colors when noColor is set or NO_COLOR is present in
// the environment (https://no-color.org/), and selects the dark theme
// otherwise.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

// Paint wraps s in code and the theme reset. Empty codes leave s unchanged.
func (t Theme) Paint(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + t.Reset
}
