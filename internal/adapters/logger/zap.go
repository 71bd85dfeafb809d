// Package logger adapts zap to the logging port.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps a zap sugared logger behind the logging port.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a production logger at the given level. Unknown levels fall
// back to info.
func New(level string) (*ZapLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &ZapLogger{sugar: l.Sugar()}, nil
}

func (l *ZapLogger) Debug(msg string) {
	l.sugar.Debug(msg)
}

func (l *ZapLogger) Error(msg string) {
	l.sugar.Error(msg)
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() {
	_ = l.sugar.Sync()
}

// Nop returns a logger that discards everything.
func Nop() *ZapLogger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}
