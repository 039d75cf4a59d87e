package observability

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLoggingConfig(t *testing.T) {
	cfg := DefaultLoggingConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
	assert.False(t, cfg.AddSource)
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := DefaultLoggingConfig()
			cfg.Level = tt.level
			logger := NewLogger(cfg)
			assert.Equal(t, tt.expected, logger.GetLevel())
		})
	}
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	cfg := DefaultLoggingConfig()
	cfg.Format = "console"

	// Should not panic and should produce a usable logger.
	logger := NewLogger(cfg)
	logger.Info().Msg("console logger smoke test")
}

func TestWithRequestContext(t *testing.T) {
	base := zerolog.Nop()
	logger := WithRequestContext(base, "abc123", "GET", "/api/topics")
	assert.NotNil(t, logger)
}
