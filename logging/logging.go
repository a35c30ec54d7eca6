// Package logging builds the process-wide zap logger from config.LogConfig.
package logging

import (
	"sync/atomic"

	cfg "github.com/automoto/throwball/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

// New creates a zap logger for the given configuration.
// Unknown levels fall back to info, unknown formats to json.
func New(c cfg.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if c.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if c.Format == "console" {
		zc.Encoding = "console"
	} else {
		zc.Encoding = "json"
	}
	// Per-frame debug lines would be dropped by the default sampler.
	zc.Sampling = nil

	return zc.Build(zap.AddCaller())
}

// L returns the process logger. It is a no-op logger until SetGlobal is called.
func L() *zap.Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetGlobal replaces the process logger. Passing nil restores the no-op logger.
func SetGlobal(l *zap.Logger) {
	global.Store(l)
}
