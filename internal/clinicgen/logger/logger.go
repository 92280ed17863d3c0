package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger

// InitLogger configures the global sugared logger for generation runs.
// Unknown level strings fall back to info rather than failing the run.
func InitLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// runs are short-lived batches; stack traces on warnings are noise
	cfg.DisableStacktrace = true

	z, err := cfg.Build()
	if err != nil {
		return err
	}

	logger = z.Named("clinicgen").Sugar()
	return nil
}

// L returns the global sugared logger, initializing at info level if
// InitLogger has not been called.
func L() *zap.SugaredLogger {
	if logger == nil {
		_ = InitLogger("info")
	}
	return logger
}
