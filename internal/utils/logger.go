package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const consoleEncoding = "console"

// NewApplicationLogger constructs a zap logger configured for human-readable
// console output at the default informational level.
func NewApplicationLogger() (*zap.Logger, error) {
	return newConsoleLogger(zapcore.InfoLevel)
}

// NewDebugLogger constructs a console logger that also emits debug
// diagnostics, used when verbose mode is requested.
func NewDebugLogger() (*zap.Logger, error) {
	return newConsoleLogger(zapcore.DebugLevel)
}

func newConsoleLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = consoleEncoding
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = EmptyString
	config.EncoderConfig.LevelKey = EmptyString
	config.EncoderConfig.NameKey = EmptyString
	config.EncoderConfig.CallerKey = EmptyString
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = EmptyString
	return config.Build()
}
