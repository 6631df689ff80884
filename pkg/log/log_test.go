// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Options_Validate(t *testing.T) {
	opts := &Options{
		Level:            "test",
		Format:           "test",
		EnableColor:      true,
		DisableCaller:    false,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	errs := opts.Validate()
	assert.Len(t, errs, 2)
	assert.Empty(t, NewOptions().Validate())
}

func Test_WithContext(t *testing.T) {
	ctx := WithContext(context.Background())
	assert.NotNil(t, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}

func Test_L(t *testing.T) {
	opts := NewOptions()
	opts.OutputPaths = []string{"stdout"}
	Init(opts)
	defer Flush()

	ctx := context.WithValue(context.Background(), KeyRequestID, "123456") //nolint: staticcheck
	lg := L(ctx)
	assert.NotSame(t, std, lg)

	lg.Infow("drink created", "title", "water")
	WithValues("key", "value").Info("with values")
}
