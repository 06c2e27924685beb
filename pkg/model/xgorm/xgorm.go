// Package xgorm implements gorm's logger interface on top of xlog, so SQL
// traces land in the same rotated JSON stream as everything else.
package xgorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"miniblog/pkg/xlog"

	gl "gorm.io/gorm/logger"
)

var ErrRecordNotFound = gl.ErrRecordNotFound

const (
	Silent = gl.Silent
	Error  = gl.Error
	Warn   = gl.Warn
	Info   = gl.Info
)

type LogLevel = gl.LogLevel

type Logger struct {
	LogLevel      LogLevel
	SlowThreshold time.Duration

	logger *xlog.Logger
}

func New(level LogLevel) *Logger {
	return &Logger{
		LogLevel:      level,
		SlowThreshold: time.Second,
		logger:        xlog.GetLogger(),
	}
}

func (l *Logger) LogMode(level gl.LogLevel) gl.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *Logger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Info {
		l.logger.Infof(msg, data...)
	}
}

func (l *Logger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Warn {
		l.logger.Warningf(msg, data...)
	}
}

func (l *Logger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= Error {
		l.logger.Errorf(msg, data...)
	}
}

func (l *Logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.LogLevel >= Error && !errors.Is(err, ErrRecordNotFound):
		sql, rows := fc()
		l.logger.Errorf("sql err:%s [%.3fms] [rows:%s] %s", err, ms(elapsed), rowsStr(rows), sql)
	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.LogLevel >= Warn:
		sql, rows := fc()
		l.logger.Warningf("slow sql >= %v [%.3fms] [rows:%s] %s", l.SlowThreshold, ms(elapsed), rowsStr(rows), sql)
	case l.LogLevel == Info:
		sql, rows := fc()
		l.logger.Debugf("sql [%.3fms] [rows:%s] %s", ms(elapsed), rowsStr(rows), sql)
	}
}

func ms(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

func rowsStr(rows int64) string {
	if rows == -1 {
		return "-"
	}
	return fmt.Sprintf("%d", rows)
}
