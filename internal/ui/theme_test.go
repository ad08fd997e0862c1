package ui

import "testing"

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(CurrentTheme())

	for name, want := range map[string]string{"dark": "dark", "light": "light", "none": "none", "neon": "dark"} {
		SetTheme(name)
		if got := CurrentTheme().Name; got != want {
			t.Errorf("SetTheme(%q): active theme %q, want %q", name, got, want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(CurrentTheme())

	InitTheme(true)
	if CurrentTheme().Name != "none" {
		t.Error("noColor flag should disable colors")
	}

	t.Setenv("NO_COLOR", "")
	InitTheme(false)
	if CurrentTheme().Name != "none" {
		t.Error("NO_COLOR should disable colors even when empty")
	}
}

func TestPaint(t *testing.T) {
	t.Parallel()
	if got := NoColorTheme.Paint(NoColorTheme.Value, "42"); got != "42" {
		t.Errorf("no-color Paint = %q", got)
	}
	if got := DarkTheme.Paint(DarkTheme.Value, "42"); got != DarkTheme.Value+"42"+DarkTheme.Reset {
		t.Errorf("dark Paint = %q", got)
	}
}
