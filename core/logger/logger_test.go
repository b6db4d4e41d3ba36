package logger_test

import (
	"testing"

	"bom-checker/core/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   logger.Config
		level zapcore.Level
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel},
		{"Warn", logger.Config{Level: "warn", Format: "console"}, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level))
			assert.False(t, l.Core().Enabled(tt.level-1))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(&logger.Config{Level: "loud"})
	assert.Error(t, err)
}

func TestWithRunID(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "info", Format: "json"})
	require.NoError(t, err)

	tagged, id := logger.WithRunID(l)
	assert.NotNil(t, tagged)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	_, other := logger.WithRunID(l)
	assert.NotEqual(t, id, other)
}
