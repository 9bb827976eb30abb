package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"cerb/internal/platform/config"
)

func TestNew(t *testing.T) {
	t.Run("json at warn", func(t *testing.T) {
		log, err := New(config.LogConfig{Level: "warn", Format: "json"})
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("console at debug", func(t *testing.T) {
		log, err := New(config.LogConfig{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "loud", Format: "json"})
		require.Error(t, err)
	})
}
