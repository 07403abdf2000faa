package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_NullLogger(t *testing.T) {
	// Get before Init must return a usable no-op logger
	l := Get()
	if _, ok := l.(*NullLogger); !ok {
		t.Fatalf("expected NullLogger before Init, got %T", l)
	}

	// none of these may panic
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
	l.With("k", "v").Info("child")
	if err := l.Sync(); err != nil {
		t.Errorf("expected nil from Sync, got %v", err)
	}
}

func TestInit_Twice(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{
		Level:   LevelInfo,
		Outputs: []OutputConfig{{Type: OutputStdout, Writer: &buf}},
	}

	if err := Init(cfg); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	defer Shutdown()

	if err := Init(cfg); err == nil {
		t.Error("expected second Init to fail")
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewSlogLogger(Config{
		Level:   LevelWarn,
		Outputs: []OutputConfig{{Type: OutputStdout, Writer: &buf}},
	})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	l.Info("should be filtered")
	l.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Errorf("info message leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestSlogLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewSlogLogger(Config{
		Level:   LevelInfo,
		Format:  FormatJSON,
		Outputs: []OutputConfig{{Type: OutputStdout, Writer: &buf}},
	})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	l.Info("hello", "path", "/tmp/x")

	out := buf.String()
	if !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
	if !strings.Contains(out, `"path":"/tmp/x"`) {
		t.Errorf("expected structured attribute, got %q", out)
	}
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewSlogLogger(Config{
		Level:   LevelInfo,
		Outputs: []OutputConfig{{Type: OutputStdout, Writer: &buf}},
	})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	l.With("component", "walker").Info("step")

	out := buf.String()
	if !strings.Contains(out, "component=walker") {
		t.Errorf("expected inherited attribute, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("JSON") != FormatJSON {
		t.Error("expected JSON to parse as FormatJSON")
	}
	if ParseFormat("text") != FormatText {
		t.Error("expected text to parse as FormatText")
	}
	if ParseFormat("") != FormatText {
		t.Error("expected empty format to default to text")
	}
}
