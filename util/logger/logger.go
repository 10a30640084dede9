// Package logger exposes a process wide sugared zap logger. Engine packages
// use it to record enrichment failures they swallow, so degraded fields stay
// diagnosable without changing any result record.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger   *zap.SugaredLogger
	initOnce sync.Once
)

// Init configures the global logger with the given minimum level ("debug",
// "info", "warn", "error"). Calls after the first one have no effect.
func Init(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "ts"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			parsed,
		)
		logger = zap.New(core).Sugar()
	})
	return nil
}

// L returns the global logger, initializing it at warn level if Init was
// never called.
func L() *zap.SugaredLogger {
	if logger == nil {
		_ = Init("warn")
	}
	return logger
}

// Sync flushes buffered log entries. Safe to call on a nil logger.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
