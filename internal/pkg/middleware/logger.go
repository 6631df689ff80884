// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marmotedu/coffeeshop/internal/pkg/core"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

// Logger writes one access log line per request through pkg/log.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		log.L(c).Infow("http request",
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client", c.ClientIP(),
			"method", c.Request.Method,
			"path", path,
			"size", c.Writer.Size(),
			"error", c.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}

// Recovery turns a panic into a 500 JSON body and logs the stack.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.L(c).Errorw("panic recovered", "panic", recovered, "stack", string(debug.Stack()))

		c.AbortWithStatusJSON(http.StatusInternalServerError, core.ErrResponse{
			Success: false,
			Error:   http.StatusInternalServerError,
			Message: "Internal server error",
		})
	})
}
