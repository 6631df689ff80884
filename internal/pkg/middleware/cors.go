// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Cors add cors headers. Every origin is allowed so that the browser frontend
// can be served from any host.
func Cors() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", XRequestIDKey},
		ExposeHeaders:    []string{"Content-Length", XRequestIDKey},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
