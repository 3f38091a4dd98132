package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("with default output", func(t *testing.T) {
		logger := New(Config{Level: LevelInfo})
		if logger == nil {
			t.Fatal("New returned nil")
		}
	})

	t.Run("with custom output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(Config{Level: LevelInfo, Output: buf})
		if logger.writer != buf {
			t.Error("Logger should use provided output writer")
		}
	})

	t.Run("empty level defaults to info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(Config{Output: buf})

		logger.Debug("hidden", nil)
		if buf.Len() != 0 {
			t.Error("debug should be filtered at default level")
		}

		logger.Info("shown", nil)
		if buf.Len() == 0 {
			t.Error("info should be logged at default level")
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"off", LevelOff},
		{"none", LevelOff},
		{"disabled", LevelOff},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		configLvl Level
		logLvl    Level
		shouldLog bool
	}{
		{"debug logs debug", LevelDebug, LevelDebug, true},
		{"debug logs error", LevelDebug, LevelError, true},
		{"info skips debug", LevelInfo, LevelDebug, false},
		{"info logs info", LevelInfo, LevelInfo, true},
		{"warn skips info", LevelWarn, LevelInfo, false},
		{"warn logs warn", LevelWarn, LevelWarn, true},
		{"error skips warn", LevelError, LevelWarn, false},
		{"error logs error", LevelError, LevelError, true},
		{"off skips error", LevelOff, LevelError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(Config{Level: tt.configLvl, Output: buf})

			logger.log(tt.logLvl, "test message", nil)

			hasOutput := buf.Len() > 0
			if hasOutput != tt.shouldLog {
				t.Errorf("shouldLog = %v, but hasOutput = %v", tt.shouldLog, hasOutput)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: LevelDebug, Format: FormatJSON, Output: buf})

	logger.Warn("json message", map[string]any{"path": "/tmp/project"})

	var e entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if e.Level != "warn" {
		t.Errorf("level = %q, want warn", e.Level)
	}
	if e.Message != "json message" {
		t.Errorf("message = %q, want 'json message'", e.Message)
	}
	if e.Fields["path"] != "/tmp/project" {
		t.Errorf("fields[path] = %v, want /tmp/project", e.Fields["path"])
	}
}

func TestHumanFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: LevelDebug, Format: FormatHuman, Output: buf})

	logger.Error("something failed", map[string]any{"file": "page.tsx"})

	output := buf.String()
	if !strings.Contains(output, "[error]") {
		t.Errorf("output should contain level tag, got: %s", output)
	}
	if !strings.Contains(output, "something failed") {
		t.Errorf("output should contain message, got: %s", output)
	}
	if !strings.Contains(output, "file=page.tsx") {
		t.Errorf("output should contain fields, got: %s", output)
	}
}

func TestNop(t *testing.T) {
	logger := Nop()

	// Must not panic and must not write anywhere visible.
	logger.Debug("a", nil)
	logger.Info("b", map[string]any{"k": 1})
	logger.Warn("c", nil)
	logger.Error("d", nil)
}
