package tachyon

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/tachyon/config"
)

// newLogger builds the engine logger. Logs go to the configured file;
// stdout and stderr belong to the terminal while the game runs, so an
// empty file path disables logging entirely.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}
	zapCfg.DisableStacktrace = true

	return zapCfg.Build()
}
