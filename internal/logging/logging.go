package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level picks the minimum log level. Verbose always wins with debug;
// otherwise long-running commands log at info and one-shot commands only
// report warnings.
func Level(verbose, longRunning bool) zapcore.Level {
	switch {
	case verbose:
		return zapcore.DebugLevel
	case longRunning:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}

// New builds the process logger with production JSON encoding.
func New(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Named("storefront"), nil
}
