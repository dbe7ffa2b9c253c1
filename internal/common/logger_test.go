package common

import (
	"path/filepath"
	"testing"

	"gatherchat/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "text", OutputPath: "stderr"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json", OutputPath: path})
	require.NoError(t, err)
	logger.Info("hello")
	assert.NoError(t, logger.Sync())
	assert.FileExists(t, path)
}

func TestNewLogger_InvalidSettings(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = NewLogger(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
