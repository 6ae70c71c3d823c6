package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"", InfoLevel, false},
		{" warning ", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"fatal", FatalLevel, false},
		{"verbose", InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultLoggerRoutesByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWriterLogger(&out, &errOut, false)
	logger.SetLevel(DebugLevel)

	logger.Debug("debug line")
	logger.Info("info line")
	logger.Warn("warn line")
	logger.Error(errors.New("boom"), "error line")

	if !strings.Contains(out.String(), "[DEBUG] debug line") || !strings.Contains(out.String(), "[INFO] info line") {
		t.Errorf("stdout missing debug/info lines: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[WARN] warn line") {
		t.Errorf("stderr missing warn line: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR] error line: boom") {
		t.Errorf("stderr missing error line: %q", errOut.String())
	}
}

func TestDefaultLoggerFiltersBelowLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWriterLogger(&out, &errOut, false)
	logger.SetLevel(WarnLevel)

	logger.Info("hidden")
	if out.Len() != 0 {
		t.Errorf("expected no output below level, got %q", out.String())
	}
}

func TestWithFieldsSortedAndSharedLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	root := NewWriterLogger(&out, &errOut, false)
	child := root.WithFields(Fields{"component": "colony", "agents": 3})

	root.SetLevel(WarnLevel)
	child.Info("suppressed")
	if out.Len() != 0 {
		t.Fatalf("child should follow root level, got %q", out.String())
	}

	root.SetLevel(InfoLevel)
	child.Info("generation done", Fields{"best": 1.5})
	got := strings.TrimSpace(out.String())
	want := "[INFO] generation done agents=3 best=1.5 component=colony"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWithContextFields(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWriterLogger(&out, &errOut, false)

	ctx := ContextWithFields(context.Background(), Fields{"run": "a"})
	ctx = ContextWithFields(ctx, Fields{"seed": 7})
	logger.WithContext(ctx).Info("start")

	if got := strings.TrimSpace(out.String()); got != "[INFO] start run=a seed=7" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestFatalCallsExit(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWriterLogger(&out, &errOut, false)
	code := -1
	logger.exit = func(c int) { code = c }

	logger.Fatal(errors.New("bad"), "cannot continue")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestSetGlobalLoggerNil(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	if _, ok := GetGlobalLogger().(*NoOpLogger); !ok {
		t.Errorf("expected NoOpLogger after SetGlobalLogger(nil)")
	}
}
