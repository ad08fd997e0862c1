package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestZerologAdapterFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := NewLogger(&buf, "test", zerolog.DebugLevel)

	l.Info("started", String("mode", "fib"), Int("k", 7), Uint64("n", 100), Float64("ratio", 0.5),
		Duration("elapsed", 1500*time.Millisecond), Field{Key: "flag", Value: true})
	l.Debug("detail", Field{Key: "cause", Value: errors.New("boom")})
	l.Error("failed", errors.New("bad"), Field{Key: "other", Value: []int{1}})

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	first := lines[0]
	if first["component"] != "test" || first["mode"] != "fib" || first["k"] != 7.0 ||
		first["n"] != 100.0 || first["ratio"] != 0.5 || first["elapsed"] != 1500.0 || first["flag"] != true {
		t.Errorf("unexpected fields: %v", first)
	}
	if lines[1]["cause"] != "boom" || lines[1]["level"] != "debug" {
		t.Errorf("unexpected debug line: %v", lines[1])
	}
	if lines[2]["error"] != "bad" || lines[2]["level"] != "error" {
		t.Errorf("unexpected error line: %v", lines[2])
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := NewLogger(&buf, "test", zerolog.ErrorLevel)
	l.Info("hidden")
	l.Debug("hidden")
	l.Error("shown", errors.New("x"))
	if n := len(decodeLines(t, &buf)); n != 1 {
		t.Errorf("got %d lines, want 1", n)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
