// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is an alias for the field structure in the underlying log frame.
type Field = zapcore.Field

// Level is an alias for the level structure in the underlying log frame.
type Level = zapcore.Level

var (
	// DebugLevel logs are typically voluminous, and are usually disabled in
	// production.
	DebugLevel = zapcore.DebugLevel
	// InfoLevel is the default logging priority.
	InfoLevel = zapcore.InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual
	// human review.
	WarnLevel = zapcore.WarnLevel
	// ErrorLevel logs are high-priority.
	ErrorLevel = zapcore.ErrorLevel
)

// Alias for zap type functions.
var (
	Any      = zap.Any
	Array    = zap.Array
	Bool     = zap.Bool
	Duration = zap.Duration
	Err      = zap.Error
	Int      = zap.Int
	Int64    = zap.Int64
	Uint     = zap.Uint
	String   = zap.String
	Strings  = zap.Strings
	Time     = zap.Time
)
