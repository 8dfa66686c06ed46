package utils

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureLog(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := CurrentLevel
	CurrentLevel = level
	SetOutput(&buf)
	t.Cleanup(func() {
		CurrentLevel = prev
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestLevelGate(t *testing.T) {
	buf := captureLog(t, LevelWarn)
	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	Warn("shown %d", 3)
	Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the level were logged:\n%s", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "shown 3") || !strings.Contains(out, "shown 4") {
		t.Errorf("expected warn and error lines, got:\n%s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"Warn", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelWarn, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestSlogBridge(t *testing.T) {
	buf := captureLog(t, LevelInfo)
	l := NewSlogLogger("gg").With("backend", "software")

	l.Debug("dropped")
	l.WithGroup("ctx").Info("resized", "w", 640)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("debug record passed the info gate:\n%s", out)
	}
	for _, want := range []string{"[INFO]", "[GG] resized", "backend=software", "ctx.w=640"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRaylibLogCallback(t *testing.T) {
	buf := captureLog(t, LevelWarn)
	RaylibLogCallback(3, "INFO: noisy")
	RaylibLogCallback(4, "WARNING: texture 100%")

	out := buf.String()
	if strings.Contains(out, "noisy") {
		t.Errorf("raylib info passed the warn gate:\n%s", out)
	}
	if !strings.Contains(out, "[RAYLIB]") || !strings.Contains(out, "texture 100%") {
		t.Errorf("raylib warning missing or mangled:\n%s", out)
	}
}
