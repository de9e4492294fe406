package obs

import (
	"github.com/rs/zerolog"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}

// Logger is a minimal logging interface for operator diagnostics.
type Logger interface {
	Logf(level Level, format string, args ...interface{})
}

// FieldLogger is a Logger that can attach a structured field to every
// line it writes.
type FieldLogger interface {
	Logger
	With(key, value string) Logger
}

// WithField returns l carrying key=value. Loggers without field support
// get the pair as a message prefix instead.
func WithField(l Logger, key, value string) Logger {
	if fl, ok := l.(FieldLogger); ok {
		return fl.With(key, value)
	}
	return prefixLogger{l: l, prefix: key + "=" + value + " "}
}

type prefixLogger struct {
	l      Logger
	prefix string
}

func (p prefixLogger) Logf(level Level, format string, args ...interface{}) {
	p.l.Logf(level, p.prefix+format, args...)
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(level Level, format string, args ...interface{}) {}

func (n NopLogger) With(key, value string) Logger { return n }

// ZeroLogger adapts a zerolog.Logger.
type ZeroLogger struct {
	L   zerolog.Logger
	Min Level
}

func (z ZeroLogger) Logf(level Level, format string, args ...interface{}) {
	if level < z.Min {
		return
	}
	z.L.WithLevel(level.zerolog()).Msgf(format, args...)
}

// With returns a copy whose lines carry the key/value field.
func (z ZeroLogger) With(key, value string) Logger {
	z.L = z.L.With().Str(key, value).Logger()
	return z
}
