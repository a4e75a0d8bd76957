// Package erclogger wraps logrus the way platform-lib's pkg/logger does,
// scoped to the ERC CLI and HTTP gateway. The pure erc package never
// imports this; it performs no logging of its own.
package erclogger

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus.Logger with a fixed service field.
type Logger struct {
	*logrus.Logger
	serviceName string
}

// New creates a logger at the given level, tagging every entry with
// serviceName.
func New(level, serviceName string) *Logger {
	l := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	l.SetLevel(logLevel)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	l.SetOutput(os.Stdout)

	return &Logger{Logger: l, serviceName: serviceName}
}

// WithContext adds a request id to the log entry when present on ctx.
func (l *Logger) WithContext(ctx context.Context) *logrus.Entry {
	entry := l.Logger.WithField("service", l.serviceName)
	if requestID := ctx.Value(requestIDKey{}); requestID != nil {
		entry = entry.WithField("request_id", requestID)
	}
	return entry
}

// WithField adds service plus one field.
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.Logger.WithField("service", l.serviceName).WithField(key, value)
}

// WithError adds service plus an error field.
func (l *Logger) WithError(err error) *logrus.Entry {
	return l.Logger.WithField("service", l.serviceName).WithError(err)
}

type requestIDKey struct{}

// WithRequestID returns a context carrying a request id for WithContext.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}
