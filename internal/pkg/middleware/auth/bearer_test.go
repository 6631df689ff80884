// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/marmotedu/coffeeshop/internal/pkg/middleware"
	jwtauth "github.com/marmotedu/coffeeshop/pkg/auth"
	"github.com/marmotedu/coffeeshop/pkg/auth/authtest"
)

func newEngine(issuer *authtest.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	bearer := NewBearerStrategy(issuer.Verifier())
	engine := gin.New()
	engine.GET("/drinks-detail", bearer.Require(jwtauth.PermGetDrinksDetail).AuthFunc(), func(c *gin.Context) {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)

			return
		}
		c.String(http.StatusOK, claims.Subject+" "+c.GetString(middleware.UsernameKey))
	})

	return engine
}

func TestBearerStrategy(t *testing.T) {
	issuer := authtest.NewIssuer()
	engine := newEngine(issuer)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{
			name:   "no header",
			status: http.StatusUnauthorized,
			body:   `{"success":false,"error":401,"message":"Authorization header is expected.","code":"invalid_header"}`,
		},
		{
			name:   "missing permission",
			header: issuer.Bearer("post:drinks"),
			status: http.StatusForbidden,
			body:   `{"success":false,"error":403,"message":"Permission not found.","code":"unauthorized"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/drinks-detail", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/drinks-detail", nil)
	req.Header.Set("Authorization", issuer.Bearer("get:drinks-detail"))
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "auth0|barista auth0|barista", w.Body.String())
}
