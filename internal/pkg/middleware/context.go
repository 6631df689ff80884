// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/marmotedu/coffeeshop/pkg/auth"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

const (
	// UsernameKey defines the key in gin context which represents the subject of the verified token.
	UsernameKey = "username"

	// ClaimsKey defines the key in gin context which holds the verified *auth.Claims.
	ClaimsKey = "claims"
)

// Context is a middleware that injects common prefix fields to gin.Context.
func Context() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(log.KeyRequestID, GetRequestIDFromContext(c))
		c.Set(log.KeyUsername, c.GetString(UsernameKey))
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by an authentication strategy.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}

	claims, ok := v.(*auth.Claims)

	return claims, ok
}
