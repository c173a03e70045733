// Package logger provides the shared zap logger for the catalog service.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a SugaredLogger. JSON output is for machine consumption
// (containers, log shippers); the console encoder is for local development.
func New(jsonOutput bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if jsonOutput {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return zl.Sugar(), nil
}

// NewNop returns a no-op logger, used by tests and by callers that have not
// initialized logging yet.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
