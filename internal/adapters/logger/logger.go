// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/dumpfiles/internal/core/domain"
	"go.trai.ch/dumpfiles/internal/core/ports"
	"go.trai.ch/dumpfiles/internal/ui/style"
	"gopkg.in/natefinch/lumberjack.v2"
)

var _ ports.Logger = (*Logger)(nil)

// messager describes an error that reports its own message without the chain,
// like *zerr.Error.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// Options configures a Logger.
type Options struct {
	// Stdout receives debug and info records. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives warnings and errors. Defaults to os.Stderr.
	Stderr io.Writer
	// File, when set, receives every record as slog text.
	File io.Writer
	// Level is the minimum level written to Stdout and Stderr.
	Level slog.Level
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger writing progress to stdout and diagnostics to stderr.
func New(opts Options) *Logger {
	return &Logger{logger: newSlog(opts)}
}

// NewFromConfig creates a Logger from the log section of the configuration.
// A configured file is rotated with lumberjack.
func NewFromConfig(cfg domain.LogConfig) *Logger {
	opts := Options{Level: ParseLevel(cfg.Level, slog.LevelInfo)}
	if strings.TrimSpace(cfg.File) != "" {
		opts.File = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	}
	return New(opts)
}

func newSlog(opts Options) *slog.Logger {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}

	h := &splitHandler{
		progress: NewPrettyHandler(opts.Stdout, hopts),
		diag:     NewPrettyHandler(opts.Stderr, hopts),
	}
	if opts.File != nil {
		h.file = slog.NewTextHandler(opts.File, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return slog.New(h)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs err with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries flattens an error into one message per link.
// Joined errors contribute the entries of each member in order.
func collectErrorEntries(err error) []string {
	var entries []string

	for err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, member := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(member)...)
			}
			return entries
		}

		m, ok := err.(messager)
		if !ok {
			return append(entries, err.Error())
		}

		if msg := m.Message(); msg != "" {
			entries = append(entries, msg+formatMetadata(err))
		}
		err = errors.Unwrap(err)
	}

	return entries
}

func formatMetadata(err error) string {
	md, ok := err.(metadataer)
	if !ok {
		return ""
	}
	meta := md.Metadata()
	if len(meta) == 0 {
		return ""
	}

	parts := make([]string, 0, len(meta))
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		parts = append(parts, formatValue(key, meta[key]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func formatValue(key string, v any) string {
	switch val := v.(type) {
	case string:
		return key + "=" + val
	case int:
		return key + "=" + strconv.Itoa(val)
	default:
		return key + "=" + slog.AnyValue(val).String()
	}
}

// formatErrorEntries renders the first entry as the error and the rest as causes.
func formatErrorEntries(entries []string) string {
	var lines []string

	for i, entry := range entries {
		parts := strings.Split(entry, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

// ParseLevel converts a level name or number to a slog.Level.
func ParseLevel(value string, fallback slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))

	switch level {
	case "":
		return fallback
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return fallback
}
