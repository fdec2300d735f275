// Copyright (c) 2026 The Mocaverse Staking Pool developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides the structured logging facade used across the engine.
// It is a thin wrapper around zap so call sites can log with the familiar
// msg, key, value, key, value... shape without depending on zap directly.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the facade every package in this module logs through.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
	With(kv ...any) Logger
}

type sugarLogger struct {
	s *zap.SugaredLogger
}

func (l *sugarLogger) Debug(msg string, kv ...any) { l.s.Debugw(msg, kv...) }
func (l *sugarLogger) Info(msg string, kv ...any)  { l.s.Infow(msg, kv...) }
func (l *sugarLogger) Warn(msg string, kv ...any)  { l.s.Warnw(msg, kv...) }
func (l *sugarLogger) Error(msg string, kv ...any) { l.s.Errorw(msg, kv...) }

func (l *sugarLogger) With(kv ...any) Logger {
	return &sugarLogger{s: l.s.With(kv...)}
}

var (
	rootOnce sync.Once
	root     *zap.Logger
)

func base() *zap.Logger {
	rootOnce.Do(func() {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(os.Stderr), zap.NewAtomicLevelAt(zap.InfoLevel))
		root = zap.New(core)
	})
	return root
}

// WithContext returns a Logger annotated with the given key/value pairs,
// e.g. log.WithContext("pkg", "engine").
func WithContext(kv ...any) Logger {
	return &sugarLogger{s: base().Sugar().With(kv...)}
}

// SetOutputLevel replaces the process-wide root logger with one at the
// given level. Only loggers created by WithContext after the call use it;
// loggers created earlier, including every package-level logger in this
// module, keep the level they were built with.
func SetOutputLevel(level zapcore.Level) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(os.Stderr), zap.NewAtomicLevelAt(level))
	root = zap.New(core)
}

// Discard returns a Logger that drops every record; useful in unit tests.
func Discard() Logger {
	return &sugarLogger{s: zap.NewNop().Sugar()}
}
