package logging

import (
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var sb strings.Builder
	log := New(WithOutput(&sb), WithLevel(LevelWarn))

	log.Debug("hidden debug")
	log.Info("hidden info")
	log.Warn("shown warn")
	log.Error("shown error")

	out := sb.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output %q contains filtered messages", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("output %q missing messages at or above the level", out)
	}
}

func TestLogger_Formatting(t *testing.T) {
	var sb strings.Builder
	log := New(WithOutput(&sb), WithPrefix("toolkit"))

	log.Info("count=%d", 3)

	out := sb.String()
	if !strings.Contains(out, "[INFO] toolkit: count=3") {
		t.Errorf("output %q missing formatted line", out)
	}
}

func TestLogger_Fields(t *testing.T) {
	var sb strings.Builder
	log := New(WithOutput(&sb)).WithComponent("loop").WithField("buf", 2)

	log.Info("attached")

	out := sb.String()
	if !strings.Contains(out, "component=loop") || !strings.Contains(out, "buf=2") {
		t.Errorf("output %q missing fields", out)
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic, must stay silent.
	NullLogger.Error("dropped")
}
