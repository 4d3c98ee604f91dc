package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/reapers-guild/internal/config"
	"github.com/KirkDiggler/reapers-guild/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logging.ParseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, logging.ParseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, logging.ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, logging.ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, logging.ParseLevel(""))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	log, err := logging.New(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	log.Debugw("battle started", "archetype", "Ghoul")
	zap.S().Infow("via global", "turn", 3)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "battle started")
	assert.Contains(t, string(data), "Ghoul")
	assert.Contains(t, string(data), "via global")
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")

	log, err := logging.New(config.LogConfig{Level: "warn", File: path})
	require.NoError(t, err)
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	log.Infow("hidden")
	log.Warnw("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
