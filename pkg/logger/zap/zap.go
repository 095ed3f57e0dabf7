package zap

import (
	"github.com/danisdan-stack/APP-de-Turismo/pkg/logger/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a json production logger writing to stderr at cfg.Level.
func New(cfg config.Configuration) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zapCfg.EncoderConfig.TimeKey = "time"
	zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	zapCfg.Sampling = nil

	return zapCfg.Build()
}
