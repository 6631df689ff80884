// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package auth implements the authentication strategies used as gin middlewares.
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/marmotedu/coffeeshop/internal/pkg/core"
	"github.com/marmotedu/coffeeshop/internal/pkg/middleware"
	jwtauth "github.com/marmotedu/coffeeshop/pkg/auth"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

// BearerStrategy defines jwt bearer authentication strategy. The token must be
// signed by the identity provider and grant the strategy's permission.
type BearerStrategy struct {
	authorizer jwtauth.Authorizer
	permission jwtauth.Permission
}

var _ middleware.AuthStrategy = &BearerStrategy{}

// NewBearerStrategy create bearer strategy with the authorizer used to verify tokens.
func NewBearerStrategy(authorizer jwtauth.Authorizer) BearerStrategy {
	return BearerStrategy{authorizer: authorizer}
}

// Require returns a copy of the strategy that demands permission.
func (b BearerStrategy) Require(permission jwtauth.Permission) BearerStrategy {
	b.permission = permission

	return b
}

// AuthFunc defines bearer strategy as the gin authentication middleware.
func (b BearerStrategy) AuthFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := b.authorizer.Verify(c.Request.Header.Get("Authorization"), b.permission)
		if err != nil {
			core.WriteResponse(c, err, nil)
			c.Abort()

			return
		}

		c.Set(middleware.ClaimsKey, claims)
		c.Set(middleware.UsernameKey, claims.Subject)
		log.L(c).Debugf("subject `%s` granted `%s`", claims.Subject, b.permission)

		c.Next()
	}
}
