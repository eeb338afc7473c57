package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging seam used across the adapter. It wraps a sugared
// zap logger so call sites pass alternating key/value pairs.
type Logger struct {
	s *zap.SugaredLogger
}

func NewLogger() *Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zl, err := cfg.Build()
	if err != nil {
		panic("failed to initialize zap logger: " + err.Error())
	}
	return &Logger{s: zl.Sugar()}
}

// NewNopLogger discards everything. Used by tests.
func NewNopLogger() *Logger {
	return &Logger{s: zap.NewNop().Sugar()}
}

func (lg *Logger) Info(msg string, kv ...any) {
	lg.s.Infow(msg, kv...)
}

func (lg *Logger) Error(msg string, kv ...any) {
	lg.s.Errorw(msg, kv...)
}

func (lg *Logger) Sync() {
	_ = lg.s.Sync()
}
