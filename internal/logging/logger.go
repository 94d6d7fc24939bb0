// Package logging provides structured logging for the wallet wrapped
// service. Output is one JSON object (or a text line) per entry.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Level represents the severity of a log message
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Format represents the output format for logs
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Logger writes leveled, structured log entries. With* methods return
// derived loggers and never mutate the receiver, so a Logger is safe to
// share.
type Logger struct {
	level  Level
	format Format
	output io.Writer
	fields map[string]interface{}
}

type entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Caller    string                 `json:"caller,omitempty"`
}

// New creates a logger writing to stdout.
func New(level Level, format Format) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: os.Stdout,
		fields: make(map[string]interface{}),
	}
}

func (l *Logger) clone() *Logger {
	next := &Logger{
		level:  l.level,
		format: l.format,
		output: l.output,
		fields: make(map[string]interface{}, len(l.fields)+1),
	}
	for k, v := range l.fields {
		next.fields[k] = v
	}
	return next
}

// WithField returns a logger with one additional field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	next := l.clone()
	next.fields[key] = value
	return next
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	next := l.clone()
	for k, v := range fields {
		next.fields[k] = v
	}
	return next
}

// WithError returns a logger carrying the error as a field.
func (l *Logger) WithError(err error) *Logger {
	return l.WithField("error", err.Error())
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.output = w
}

func (l *Logger) Debug(message string)                  { l.log(LevelDebug, message) }
func (l *Logger) Debugf(format string, a ...interface{}) { l.log(LevelDebug, fmt.Sprintf(format, a...)) }
func (l *Logger) Info(message string)                   { l.log(LevelInfo, message) }
func (l *Logger) Infof(format string, a ...interface{})  { l.log(LevelInfo, fmt.Sprintf(format, a...)) }
func (l *Logger) Warn(message string)                   { l.log(LevelWarn, message) }
func (l *Logger) Warnf(format string, a ...interface{})  { l.log(LevelWarn, fmt.Sprintf(format, a...)) }
func (l *Logger) Error(message string)                  { l.log(LevelError, message) }
func (l *Logger) Errorf(format string, a ...interface{}) { l.log(LevelError, fmt.Sprintf(format, a...)) }

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(message string) {
	l.log(LevelFatal, message)
	os.Exit(1)
}

func (l *Logger) log(level Level, message string) {
	if level < l.level {
		return
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   message,
		Fields:    l.fields,
	}
	if len(e.Fields) == 0 {
		e.Fields = nil
	}

	if level >= LevelError {
		if _, file, line, ok := runtime.Caller(2); ok {
			e.Caller = fmt.Sprintf("%s:%d", file, line)
		}
	}

	var out string
	if l.format == FormatText {
		out = formatText(e)
	} else {
		raw, _ := json.Marshal(e)
		out = string(raw)
	}
	fmt.Fprintln(l.output, out)
}

func formatText(e entry) string {
	out := fmt.Sprintf("[%s] %s: %s", e.Timestamp, e.Level, e.Message)
	if len(e.Fields) > 0 {
		raw, _ := json.Marshal(e.Fields)
		out += fmt.Sprintf(" fields=%s", raw)
	}
	if e.Caller != "" {
		out += fmt.Sprintf(" caller=%s", e.Caller)
	}
	return out
}

// Global logger instance

var globalLogger *Logger

// Init initializes the global logger.
func Init(level Level, format Format) {
	globalLogger = New(level, format)
}

// Global returns the global logger, defaulting to info/JSON when Init was
// never called.
func Global() *Logger {
	if globalLogger == nil {
		globalLogger = New(LevelInfo, FormatJSON)
	}
	return globalLogger
}

// ParseLevel parses a string into a Level, defaulting to info.
func ParseLevel(level string) Level {
	switch level {
	case "debug":
		return LevelDebug
	case "info", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// ParseFormat parses a string into a Format, defaulting to JSON.
func ParseFormat(format string) Format {
	if format == "text" {
		return FormatText
	}
	return FormatJSON
}
