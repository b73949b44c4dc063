// Package log provides the process-wide structured logger.
package log

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents the verbosity of logging
type Level string

const (
	// LevelDebug enables all logs
	LevelDebug Level = "debug"
	// LevelInfo enables info, warning, and error logs
	LevelInfo Level = "info"
	// LevelWarn enables only warning and error logs (default)
	LevelWarn Level = "warn"
	// LevelError enables only error logs
	LevelError Level = "error"
)

var (
	globalLogger *zap.SugaredLogger
	globalMutex  sync.RWMutex
)

// Config holds logger configuration
type Config struct {
	Level Level
	// Output receives log lines. Nil means stderr.
	Output zapcore.WriteSyncer
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{Level: LevelWarn}
}

// ParseLevel converts a user supplied level name. Unknown names map to warn.
func ParseLevel(s string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelDebug:
		return LevelDebug
	case LevelInfo:
		return LevelInfo
	case LevelError:
		return LevelError
	default:
		return LevelWarn
	}
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) {
	logger := newLogger(cfg)

	globalMutex.Lock()
	defer globalMutex.Unlock()
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
	globalLogger = logger
}

func mapLevelToZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func newLogger(cfg Config) *zap.SugaredLogger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	out := cfg.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), out, mapLevelToZapLevel(cfg.Level))

	// Skip the package-level helpers so callers show up in the C field.
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// Get returns the global logger, creating a default one on first use.
func Get() *zap.SugaredLogger {
	globalMutex.RLock()
	logger := globalLogger
	globalMutex.RUnlock()
	if logger != nil {
		return logger
	}

	created := newLogger(DefaultConfig())

	globalMutex.Lock()
	defer globalMutex.Unlock()
	if globalLogger == nil {
		globalLogger = created
	}
	return globalLogger
}

// Debug logs a debug message with key/value pairs
func Debug(msg string, args ...interface{}) {
	Get().Debugw(msg, args...)
}

// Info logs an info message with key/value pairs
func Info(msg string, args ...interface{}) {
	Get().Infow(msg, args...)
}

// Warn logs a warning message with key/value pairs
func Warn(msg string, args ...interface{}) {
	Get().Warnw(msg, args...)
}

// With returns a logger with additional fields
func With(args ...interface{}) *zap.SugaredLogger {
	return Get().With(args...)
}

// Sync flushes any buffered log entries
func Sync() error {
	globalMutex.RLock()
	logger := globalLogger
	globalMutex.RUnlock()
	if logger != nil {
		return logger.Sync()
	}
	return nil
}
