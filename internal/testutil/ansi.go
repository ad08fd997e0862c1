// Package testutil holds helpers shared by the powkit test suites.
package testutil

import (
	"regexp"
	"testing"

	"github.com/agbru/powkit/internal/ui"
)

// csiSequence matches ANSI CSI escape sequences such as "\x1b[1;36m".
var csiSequence = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes ANSI escape sequences from s so that rendered
// output can be compared against plain text.
func StripAnsiCodes(s string) string {
	return csiSequence.ReplaceAllString(s, "")
}

// UseTheme switches the active ui theme for the duration of the test.
// Tests calling it must not run in parallel with other theme users.
func UseTheme(t testing.TB, theme ui.Theme) {
	t.Helper()
	previous := ui.CurrentTheme()
	ui.SetCurrentTheme(theme)
	t.Cleanup(func() { ui.SetCurrentTheme(previous) })
}
