// Package obslog provides the structured logging used by cmd/countrysearch
// and by search.Finder's optional diagnostic hooks: atomic level, JSON
// encoder, optional rotated file sink. No middleware pipeline, throttling,
// or policy enforcement — a leaf library's host application doesn't need
// that. Nothing in this package is ever called from WhereText's
// per-keystroke path.
package obslog

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a zap.Logger with a dynamically adjustable level.
type Logger struct {
	zap         *zap.Logger
	atomicLevel zap.AtomicLevel
}

// FileSink rotates logs to disk via lumberjack, in addition to stderr.
type FileSink struct {
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool
}

// Config selects the sinks and starting level for New.
type Config struct {
	// Level is one of "debug", "info", "warn", "error". Empty selects "info".
	Level string
	// Service names the "service" field stamped on every entry.
	Service string
	// File optionally adds a rotated file sink alongside stderr.
	File *FileSink
}

// New builds a Logger writing JSON-encoded entries to stderr, and
// optionally to a rotated file, at the configured level.
func New(config Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		if config.Level != "" {
			return nil, fmt.Errorf("obslog: invalid level %q: %w", config.Level, err)
		}
		level = zapcore.InfoLevel
	}
	atomicLevel := zap.NewAtomicLevelAt(level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), atomicLevel),
	}
	if config.File != nil {
		lumber := &lumberjack.Logger{
			Filename:   config.File.Path,
			MaxSize:    config.File.MaxSizeMB,
			MaxAge:     config.File.MaxAgeDays,
			MaxBackups: config.File.MaxBackups,
			Compress:   config.File.Compress,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(lumber), atomicLevel))
	}

	zapLogger := zap.New(zapcore.NewTee(cores...), zap.Fields(
		zap.String("service", config.Service),
	))

	return &Logger{zap: zapLogger, atomicLevel: atomicLevel}, nil
}

// NewCLI builds a Logger configured for interactive terminal use: stderr
// only, info level, no file sink.
func NewCLI(service string) (*Logger, error) {
	return New(Config{Service: service, Level: "info"})
}

// NewCorrelationID returns a fresh correlation ID for one query-session's
// worth of diagnostic log lines.
func NewCorrelationID() string {
	return uuid.NewString()
}

// Info logs at INFO level.
func (l *Logger) Info(msg string, fields ...zap.Field) { l.zap.Info(msg, fields...) }

// Warn logs at WARN level.
func (l *Logger) Warn(msg string, fields ...zap.Field) { l.zap.Warn(msg, fields...) }

// Error logs at ERROR level.
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Debug logs at DEBUG level.
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }

// WithCorrelationID returns a logger that stamps every entry with id.
func (l *Logger) WithCorrelationID(id string) *Logger {
	return &Logger{zap: l.zap.With(zap.String("correlation_id", id)), atomicLevel: l.atomicLevel}
}

// WithComponent returns a logger that stamps every entry with a component
// name, e.g. "finder" or "cli".
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{zap: l.zap.With(zap.String("component", component)), atomicLevel: l.atomicLevel}
}

// SetLevel dynamically changes the minimum logged level.
func (l *Logger) SetLevel(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("obslog: invalid level %q: %w", level, err)
	}
	l.atomicLevel.SetLevel(parsed)
	return nil
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
