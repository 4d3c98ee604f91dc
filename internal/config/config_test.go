package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/reapers-guild/internal/config"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"REAPERS_CONFIG", "GAME_SEED", "GAME_BOARD_SIZE", "CRYSTAL_GOAL",
		"LOG_LEVEL", "LOG_FILE", "LOG_SHOW_CALLER", "REDIS_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Game.BoardSize)
	assert.Equal(t, 100, cfg.Game.CrystalGoal)
	assert.Equal(t, int64(0), cfg.Game.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "reapers.yaml")
	err := os.WriteFile(path, []byte(`
game:
  seed: 42
  crystal_goal: 40
log:
  level: debug
redis:
  url: redis://file:6379/0
`), 0o600)
	require.NoError(t, err)

	t.Setenv("REAPERS_CONFIG", path)
	t.Setenv("REDIS_URL", "redis://env:6379/1")
	t.Setenv("LOG_SHOW_CALLER", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 40, cfg.Game.CrystalGoal)
	assert.Equal(t, 5, cfg.Game.BoardSize, "unset file keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.ShowCaller)
	assert.Equal(t, "redis://env:6379/1", cfg.Redis.URL, "env wins over file")
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("REAPERS_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Game.BoardSize)
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game: [not a map"), 0o600))
	t.Setenv("REAPERS_CONFIG", path)

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, rgerr.IsValidation(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "tiny board", mutate: func(c *config.Config) { c.Game.BoardSize = 1 }, wantErr: true},
		{name: "negative goal", mutate: func(c *config.Config) { c.Game.CrystalGoal = -1 }, wantErr: true},
		{name: "unknown level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "warn level", mutate: func(c *config.Config) { c.Log.Level = "warn" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, rgerr.IsValidation(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
