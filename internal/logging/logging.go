// Package logging builds the process logger.
package logging

import (
	"github.com/KirkDiggler/reapers-guild/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a development-style zap logger from the log config and installs
// it as the global logger so zap.S() works everywhere.
func New(cfg config.LogConfig) (*zap.SugaredLogger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zcfg.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zcfg.EncoderConfig.TimeKey = ""
	zcfg.EncoderConfig.StacktraceKey = ""
	if !cfg.ShowCaller {
		zcfg.EncoderConfig.CallerKey = ""
	}
	if cfg.File != "" {
		zcfg.OutputPaths = []string{cfg.File}
		// colors are noise in a file
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger.Sugar(), nil
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
