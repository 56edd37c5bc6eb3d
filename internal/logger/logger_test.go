package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	logPath := filepath.Join(t.TempDir(), "chatgate.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	WithComponent("access").Info("check resolved", "state", "allowed")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "check resolved") || !strings.Contains(string(content), "state=allowed") {
		t.Errorf("log file missing entry, got: %s", content)
	}
	if Path() != logPath {
		t.Errorf("Path() = %q, want %q", Path(), logPath)
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := filepath.Join(t.TempDir(), "first.log")
	second := filepath.Join(t.TempDir(), "second.log")
	if err := Init(first); err != nil {
		t.Fatal(err)
	}
	if err := Init(second); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if Path() != first {
		t.Errorf("Path() = %q after second Init, want %q", Path(), first)
	}
	if _, err := os.Stat(second); !os.IsNotExist(err) {
		t.Error("second Init should not create a file")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Init("/nonexistent-dir/for/sure/x.log"); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"debug", "DEBUG", false},
		{"WARN", "WARN", false},
		{" error ", "ERROR", false},
		{"verbose", "INFO", true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got.String() != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	InitWriter(&buf)
	log := WithComponent("router")

	log.Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug line written at info level")
	}

	SetDebug(true)
	log.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug line missing after SetDebug(true)")
	}

	SetLevel(LevelWarn)
	log.Info("info-line")
	log.Warn("warn-line")
	if strings.Contains(buf.String(), "info-line") {
		t.Error("info written at warn level")
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("warn line missing: %s", buf.String())
	}
}

func TestWithMount(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	InitWriter(&buf)

	WithMount("m-1").Info("hydrated")

	out := buf.String()
	if !strings.Contains(out, "component=shell") || !strings.Contains(out, "mountID=m-1") {
		t.Errorf("missing mount attributes: %s", out)
	}
}

func TestClose_DropsLaterLines(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	InitWriter(&buf)
	Close()

	WithComponent("app").Info("after close")
	if strings.Contains(buf.String(), "after close") {
		t.Error("line written after Close")
	}
}
