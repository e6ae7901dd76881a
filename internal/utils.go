package internal

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidCapacity = errors.New("capacity must be positive")

func ValidateCapacity(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return nil
}

// NewLogger builds a console logger writing to path and returns a func that
// flushes the logger and releases the sink. An empty path gives a no-op
// logger, "-" writes to stderr and is never closed.
func NewLogger(path string, level zapcore.Level) (*zap.SugaredLogger, func() error, error) {
	noClose := func() error { return nil }
	if path == "" {
		return zap.NewNop().Sugar(), noClose, nil
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder, // 2025-04-12T18:30:00Z
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	if path == "-" {
		core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
		return zap.New(core).Sugar(), noClose, nil
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	// fail fast if the file cannot be flushed
	if err := logFile.Sync(); err != nil {
		return nil, nil, multierr.Append(fmt.Errorf("sync log file: %w", err), logFile.Close())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(logFile), level)
	logger := zap.New(core).Sugar()

	closeFn := func() error {
		return multierr.Append(logger.Sync(), logFile.Close())
	}
	return logger, closeFn, nil
}
