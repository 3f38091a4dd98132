// Package logging provides the structured, leveled logger used across
// the nextlens CLI. Output is either human-readable (colorized when
// attached to a terminal) or line-delimited JSON for automation.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Level represents the severity of a log message.
type Level string

const (
	// LevelDebug for verbose diagnostic messages.
	LevelDebug Level = "debug"
	// LevelInfo for informational messages.
	LevelInfo Level = "info"
	// LevelWarn for warning messages.
	LevelWarn Level = "warn"
	// LevelError for error messages.
	LevelError Level = "error"
	// LevelOff disables all output.
	LevelOff Level = "off"
)

var levelPriority = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
	LevelOff:   4,
}

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "warning", "WARN":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	case "off", "none", "disabled":
		return LevelOff
	default:
		return LevelInfo
	}
}

// Format represents the output format for logs.
type Format string

const (
	// FormatJSON outputs logs as line-delimited JSON.
	FormatJSON Format = "json"
	// FormatHuman outputs logs in human-readable format.
	FormatHuman Format = "human"
)

// Config holds logger configuration.
type Config struct {
	Format Format
	Level  Level
	Output io.Writer // optional, defaults to stderr
}

// Logger provides structured leveled logging.
type Logger struct {
	config  Config
	writer  io.Writer
	colored bool
}

// New creates a logger with the given configuration.
func New(config Config) *Logger {
	writer := config.Output
	if writer == nil {
		writer = os.Stderr
	}
	if config.Level == "" {
		config.Level = LevelInfo
	}

	colored := false
	if f, ok := writer.(*os.File); ok {
		colored = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &Logger{
		config:  config,
		writer:  writer,
		colored: colored,
	}
}

// Nop returns a logger that discards everything. Passing it instead of
// a real logger changes output only, never behavior.
func Nop() *Logger {
	return New(Config{Level: LevelOff, Output: io.Discard})
}

type entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

func (l *Logger) shouldLog(level Level) bool {
	return levelPriority[level] >= levelPriority[l.config.Level]
}

func (l *Logger) log(level Level, message string, fields map[string]any) {
	if l == nil || !l.shouldLog(level) {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}

	if l.config.Format == FormatJSON {
		l.logJSON(e)
	} else {
		l.logHuman(e)
	}
}

func (l *Logger) logJSON(e entry) {
	data, err := json.Marshal(e)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal log entry: %v\n", err)
		return
	}
	_, _ = fmt.Fprintln(l.writer, string(data))
}

var levelColors = map[string]*color.Color{
	string(LevelDebug): color.New(color.Faint),
	string(LevelInfo):  color.New(color.FgCyan),
	string(LevelWarn):  color.New(color.FgYellow),
	string(LevelError): color.New(color.FgRed),
}

func (l *Logger) logHuman(e entry) {
	levelStr := fmt.Sprintf("[%s]", e.Level)
	if l.colored {
		if c, ok := levelColors[e.Level]; ok {
			levelStr = c.Sprint(levelStr)
		}
	}

	_, _ = fmt.Fprintf(l.writer, "%s %s %s", e.Timestamp, levelStr, e.Message)

	if len(e.Fields) > 0 {
		_, _ = fmt.Fprint(l.writer, " |")
		for k, v := range e.Fields {
			_, _ = fmt.Fprintf(l.writer, " %s=%v", k, v)
		}
	}
	_, _ = fmt.Fprintln(l.writer)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(message string, fields map[string]any) {
	l.log(LevelDebug, message, fields)
}

// Info logs a message at info level.
func (l *Logger) Info(message string, fields map[string]any) {
	l.log(LevelInfo, message, fields)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(message string, fields map[string]any) {
	l.log(LevelWarn, message, fields)
}

// Error logs a message at error level.
func (l *Logger) Error(message string, fields map[string]any) {
	l.log(LevelError, message, fields)
}
