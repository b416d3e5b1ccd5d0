package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds the global zap logger from environment variables and
// installs it via zap.ReplaceGlobals.
//
// Supported env vars:
//   - LOG_LEVEL (default: info)
//   - LOG_FORMAT ("console" for development output, default: json)
func Init() error {
	var zapCfg zap.Config
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	levelRaw := os.Getenv("LOG_LEVEL")
	if levelRaw == "" {
		levelRaw = "info"
	}
	level, err := zapcore.ParseLevel(levelRaw)
	if err != nil {
		return err
	}
	zapCfg.Level.SetLevel(level)

	log, err := zapCfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(log)

	return nil
}
