package config

import (
	"os"
	"strconv"

	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Log   LogConfig   `yaml:"log"`
	Redis RedisConfig `yaml:"redis"`
}

// GameConfig holds gameplay configuration
type GameConfig struct {
	// Seed makes a run reproducible; 0 means seed from the clock
	Seed        int64 `yaml:"seed"`
	BoardSize   int   `yaml:"board_size"`
	CrystalGoal int   `yaml:"crystal_goal"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	ShowCaller bool   `yaml:"show_caller"`
}

// RedisConfig holds the optional transcript archive connection
type RedisConfig struct {
	URL string `yaml:"url"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			BoardSize:   5,
			CrystalGoal: 100,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds configuration from defaults, an optional YAML file named by
// REAPERS_CONFIG, and environment variables, in that order.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("REAPERS_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Game.Seed = getEnvAsInt64OrDefault("GAME_SEED", cfg.Game.Seed)
	cfg.Game.BoardSize = getEnvAsIntOrDefault("GAME_BOARD_SIZE", cfg.Game.BoardSize)
	cfg.Game.CrystalGoal = getEnvAsIntOrDefault("CRYSTAL_GOAL", cfg.Game.CrystalGoal)
	cfg.Log.Level = getEnvOrDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnvOrDefault("LOG_FILE", cfg.Log.File)
	cfg.Log.ShowCaller = getEnvAsBoolOrDefault("LOG_SHOW_CALLER", cfg.Log.ShowCaller)
	cfg.Redis.URL = getEnvOrDefault("REDIS_URL", cfg.Redis.URL)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the game cannot run with
func (c *Config) Validate() error {
	if c.Game.BoardSize < 2 {
		return rgerr.Validationf("board size must be at least 2, got %d", c.Game.BoardSize)
	}
	if c.Game.CrystalGoal < 0 {
		return rgerr.Validationf("crystal goal cannot be negative, got %d", c.Game.CrystalGoal)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return rgerr.Validationf("unknown log level %q", c.Log.Level)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return rgerr.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return rgerr.WrapWithCode(err, rgerr.CodeValidation, "failed to parse config file")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
