// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marmotedu/coffeeshop/pkg/log"
)

// slowThreshold marks queries logged as slow.
const slowThreshold = 200 * time.Millisecond

type zapGormLogger struct {
	level gormlogger.LogLevel
}

// NewLogger returns a gorm logger that writes through pkg/log.
// level follows gorm: 1 silent, 2 error, 3 warn, 4 info.
func NewLogger(level int) gormlogger.Interface {
	return &zapGormLogger{level: gormlogger.LogLevel(level)}
}

// LogMode log mode.
func (l *zapGormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.level = level

	return &newLogger
}

// Info print info.
func (l zapGormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		log.L(ctx).Infof(msg, data...)
	}
}

// Warn print warn messages.
func (l zapGormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		log.L(ctx).Warnf(msg, data...)
	}
}

// Error print error messages.
func (l zapGormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		log.L(ctx).Errorf(msg, data...)
	}
}

// Trace print sql message.
func (l zapGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		log.L(ctx).Errorw("sql failed", "error", err.Error(), "elapsed", elapsed, "rows", rows, "sql", sql)
	case elapsed > slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		log.L(ctx).Warnw("slow sql", "elapsed", elapsed, "rows", rows, "sql", sql)
	case l.level == gormlogger.Info:
		sql, rows := fc()
		log.L(ctx).Debugw("sql", "elapsed", elapsed, "rows", rows, "sql", sql)
	}
}
