package infrastructure

import (
	"log/slog"

	"guardianclima.app/internal/ports"
)

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter wraps l, or the default slog logger when l is nil
func NewSlogLoggerAdapter(l *slog.Logger) *SlogLoggerAdapter {
	return &SlogLoggerAdapter{logger: l}
}

func (l *SlogLoggerAdapter) target() *slog.Logger {
	if l.logger == nil {
		return slog.Default()
	}
	return l.logger
}

func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.target().Debug(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.target().Info(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.target().Warn(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.target().Error(msg, toArgs(fields)...)
}

func toArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		args = append(args, field.Key, field.Value)
	}
	return args
}

// MultiLogger fans every entry out to several loggers
type MultiLogger []ports.Logger

func (m MultiLogger) Debug(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Debug(msg, fields...)
	}
}

func (m MultiLogger) Info(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Info(msg, fields...)
	}
}

func (m MultiLogger) Warn(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Warn(msg, fields...)
	}
}

func (m MultiLogger) Error(msg string, fields ...ports.Field) {
	for _, l := range m {
		l.Error(msg, fields...)
	}
}
