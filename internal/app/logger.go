package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/geange/lttoolbox/internal/config"
)

// NewLogger builds the zap logger described by cfg, writing to out. The command passes stderr; stdout
// carries the progress lines only.
func NewLogger(cfg config.LogConfig, out zapcore.WriteSyncer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = ""

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	return zap.New(zapcore.NewCore(encoder, out, parseLevel(cfg.Level)))
}

func parseLevel(s string) zapcore.Level {
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
