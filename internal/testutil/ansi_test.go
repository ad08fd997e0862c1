package testutil

import (
	"testing"

	"github.com/agbru/powkit/internal/ui"
)

func TestStripAnsiCodes(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"\x1b[1;36mheading\x1b[0m", "heading"},
		{"a\x1b[33mb\x1b[0mc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripAnsiCodes(tt.in); got != tt.want {
			t.Errorf("StripAnsiCodes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUseThemeRestores(t *testing.T) {
	before := ui.CurrentTheme().Name
	t.Run("inner", func(t *testing.T) {
		UseTheme(t, ui.NoColorTheme)
		if got := ui.CurrentTheme().Name; got != ui.NoColorTheme.Name {
			t.Fatalf("theme = %q, want %q", got, ui.NoColorTheme.Name)
		}
	})
	if got := ui.CurrentTheme().Name; got != before {
		t.Errorf("theme not restored: got %q, want %q", got, before)
	}
}
