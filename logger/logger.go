// Package logger wraps github.com/sirupsen/logrus behind a small interface,
// mirroring how github.com/nabbar/golib/logger shields callers from the
// concrete logging backend.
package logger

import (
	"github.com/sirupsen/logrus"
)

// Field is a single structured logging attribute.
type Field struct {
	Key   string
	Value interface{}
}

// F is a short constructor for a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is the logging surface consumed by the rest of netkit. Transport,
// listener, and filter code log through this interface rather than calling
// fmt.Println or the standard log package directly.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

type logrusLogger struct {
	entry *logrus.Entry
}

// New returns a Logger backed by a fresh logrus.Logger with the given
// component name attached to every entry.
func New(component string) Logger {
	l := logrus.New()
	return &logrusLogger{entry: l.WithField("component", component)}
}

// NewFrom wraps an already-configured *logrus.Logger, letting an embedder
// share one logrus instance (and its hooks/formatter/output) across netkit
// and the rest of their process.
func NewFrom(l *logrus.Logger, component string) Logger {
	if l == nil {
		return New(component)
	}
	return &logrusLogger{entry: l.WithField("component", component)}
}

func withFields(e *logrus.Entry, fields []Field) *logrus.Entry {
	if len(fields) == 0 {
		return e
	}
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return e.WithFields(data)
}

func (l *logrusLogger) Debug(msg string, fields ...Field) { withFields(l.entry, fields).Debug(msg) }
func (l *logrusLogger) Info(msg string, fields ...Field)  { withFields(l.entry, fields).Info(msg) }
func (l *logrusLogger) Warn(msg string, fields ...Field)  { withFields(l.entry, fields).Warn(msg) }
func (l *logrusLogger) Error(msg string, fields ...Field) { withFields(l.entry, fields).Error(msg) }

// Noop returns a Logger that discards everything, used as a safe default
// when an embedder does not supply one.
func Noop() Logger { return noopLogger{} }

type noopLogger struct{}

func (noopLogger) Debug(string, ...Field) {}
func (noopLogger) Info(string, ...Field)  {}
func (noopLogger) Warn(string, ...Field)  {}
func (noopLogger) Error(string, ...Field) {}
