package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestComponentLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("gui")
	l.SetOutput(&buf)

	l.Component("download").Info().Str("file", "a.txt").Msg("saved")

	out := buf.String()
	if !strings.Contains(out, "saved") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "a.txt") {
		t.Errorf("expected field value in output, got %q", out)
	}
}

func TestRetryLoggerAcceptsKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("cli")
	l.SetOutput(&buf)

	RetryLogger{L: l}.Warn("retrying request", "attempt", 2, "url", "https://example.com")

	if !strings.Contains(buf.String(), "retrying request") {
		t.Errorf("expected warning to be logged, got %q", buf.String())
	}
}

func TestDebugRequested(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Setenv("MESSENGER_DEBUG", tt.value)
		if got := DebugRequested(); got != tt.want {
			t.Errorf("DebugRequested() with %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestInitFileLoggerCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/logs"
	defer CloseFileLogger()

	w, err := InitFileLogger(dir, "test.log")
	if err != nil {
		t.Fatalf("InitFileLogger failed: %v", err)
	}
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.HasSuffix(FileLogPath(), "test.log") {
		t.Errorf("unexpected log path %q", FileLogPath())
	}
}

func TestSetOutputKeepsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("cli").Component("download")
	l.SetOutput(&buf)

	l.Info().Msg("saved")

	out := buf.String()
	if !strings.Contains(out, "component") || !strings.Contains(out, "download") {
		t.Errorf("component field lost after SetOutput: %q", out)
	}
}
