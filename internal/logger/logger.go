// Package logger builds the zap loggers used by the command line tool.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field names shared by every log line.
const (
	FieldPackage = "package"
	FieldCache   = "cache"
	FieldFile    = "file"
	FieldCount   = "count"
)

// New returns a console logger writing to stderr, or a JSON production
// logger when jsonOutput is set. verbose lowers the level to debug.
func New(verbose, jsonOutput bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		return config.Build()
	}
	return NewConsole(os.Stderr, level), nil
}

// NewConsole returns a compact human readable logger writing to w.
func NewConsole(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
