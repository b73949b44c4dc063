package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

// reset drops the global logger so each test starts from Init or defaults.
func reset() {
	globalMutex.Lock()
	defer globalMutex.Unlock()
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
	globalLogger = nil
}

func TestMapLevelToZapLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected zapcore.Level
	}{
		{"debug level", LevelDebug, zapcore.DebugLevel},
		{"info level", LevelInfo, zapcore.InfoLevel},
		{"warn level", LevelWarn, zapcore.WarnLevel},
		{"error level", LevelError, zapcore.ErrorLevel},
		{"unknown level defaults to warn", Level("unknown"), zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapLevelToZapLevel(tt.level))
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelInfo, ParseLevel(" info "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelWarn, ParseLevel(""))
	assert.Equal(t, LevelWarn, ParseLevel("progress"))
}

func TestInitWritesToConfiguredOutput(t *testing.T) {
	reset()
	defer reset()

	var buf bytes.Buffer
	Init(Config{Level: LevelInfo, Output: zapcore.AddSync(&buf)})

	Debug("hidden message")
	Info("resolved command", "command", "qtbug")
	_ = Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "resolved command")
	assert.Contains(t, out, "qtbug")
	assert.Contains(t, out, "INFO")
}

func TestGetInitializesDefaultLogger(t *testing.T) {
	reset()
	defer reset()

	logger := Get()
	assert.NotNil(t, logger)
	assert.Same(t, logger, Get())
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestWithAddsFields(t *testing.T) {
	reset()
	defer reset()

	var buf bytes.Buffer
	Init(Config{Level: LevelDebug, Output: zapcore.AddSync(&buf)})

	With("component", "tui").Debugw("ready")
	_ = Sync()

	assert.Contains(t, buf.String(), "component")
	assert.Contains(t, buf.String(), "tui")
}

func TestWarnShownAtDefaultLevel(t *testing.T) {
	reset()
	defer reset()

	var buf bytes.Buffer
	Init(Config{Level: ParseLevel(""), Output: zapcore.AddSync(&buf)})

	Info("configuration loaded")
	Warn("opener failed", "url", "http://example.org")
	_ = Sync()

	out := buf.String()
	assert.NotContains(t, out, "configuration loaded")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "opener failed")
	assert.Contains(t, out, "http://example.org")
}
