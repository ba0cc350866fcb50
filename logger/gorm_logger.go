package logger

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	glogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM log output through logrus
type GormLogger struct {
	logger *log.Logger
}

// NewGormLogger creates a new instance of GormLogger
func NewGormLogger(logger *log.Logger) *GormLogger {
	return &GormLogger{logger: logger}
}

// LogMode sets the log mode for GORM
func (l *GormLogger) LogMode(_ glogger.LogLevel) glogger.Interface {
	return l
}

// Info logs an info message
func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	l.logger.WithContext(ctx).Debugf(msg, data...)
}

// Warn logs a warning message
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	l.logger.WithContext(ctx).Warnf(msg, data...)
}

// Error logs an error message
func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	l.logger.WithContext(ctx).Errorf(msg, data...)
}

// Trace logs a SQL query with its latency and row count
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := l.logger.WithContext(ctx).WithFields(log.Fields{
		"latency_ms": elapsed.Milliseconds(),
		"rows":       rows,
		"sql":        sql,
	})
	if err != nil {
		entry.WithField("error", err.Error()).Warn("SQL failed")
		return
	}
	entry.Trace("SQL executed")
}
