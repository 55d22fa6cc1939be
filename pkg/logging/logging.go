package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields represents structured log fields
type Fields map[string]any

// Logger is the structured logging interface used throughout the project
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

type zapLogger struct {
	base   *zap.Logger
	fields Fields
}

var (
	mu           sync.RWMutex
	level        = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	defaultLog   Logger
	defaultEonce sync.Once
)

func newZapBase() *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}

// NewDefaultLogger returns the shared process-wide logger
func NewDefaultLogger() Logger {
	defaultEonce.Do(func() {
		defaultLog = &zapLogger{base: newZapBase()}
	})
	return defaultLog
}

// WithFields returns the default logger with the given fields attached
func WithFields(fields Fields) Logger {
	return NewDefaultLogger().WithFields(fields)
}

// SetLevel adjusts the global log level ("debug", "info", "warn", "error")
func SetLevel(name string) {
	mu.Lock()
	defer mu.Unlock()
	switch name {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "warn":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

func (l *zapLogger) zapFields(extra []Fields) []zap.Field {
	out := make([]zap.Field, 0, len(l.fields)+8)
	for k, v := range l.fields {
		out = append(out, zap.Any(k, v))
	}
	for _, f := range extra {
		for k, v := range f {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}

func (l *zapLogger) Debug(msg string, fields ...Fields) {
	l.base.Debug(msg, l.zapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Fields) {
	l.base.Info(msg, l.zapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Fields) {
	l.base.Warn(msg, l.zapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Fields) {
	l.base.Error(msg, l.zapFields(fields)...)
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &zapLogger{base: l.base, fields: merged}
}
