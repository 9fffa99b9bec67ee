// Package dlogger exposes a simple zap logger, with log levels
package dlogger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelInfo sets the log level to info
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug
	LogLevelDebug = "debug"

	// LogLevelNone sets logger to no logging
	LogLevelNone = "none"
)

// New returns a console zap logger at the specified level, writing to ws.
// CLI runs log human-readable lines to stderr so report output on stdout stays parseable.
func New(logLevel string, ws zapcore.WriteSyncer) (*zap.Logger, error) {
	if logLevel == LogLevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, err
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // timestamps add noise to single-shot CLI runs
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, lvl)
	return zap.New(core), nil
}

// GetLogger returns a stderr console logger with the specified level
func GetLogger(logLevel string) (*zap.Logger, error) {
	return New(logLevel, zapcore.Lock(os.Stderr))
}

// MustGetLogger returns a logger with the specified level or panics
func MustGetLogger(logLevel string) *zap.Logger {
	l, err := GetLogger(logLevel)
	if err != nil {
		panic(err)
	}
	return l
}
