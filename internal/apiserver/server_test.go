// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package apiserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmotedu/coffeeshop/internal/apiserver/config"
	"github.com/marmotedu/coffeeshop/internal/apiserver/options"
	"github.com/marmotedu/coffeeshop/internal/apiserver/store"
	"github.com/marmotedu/coffeeshop/pkg/auth/authtest"
)

func newTestOptions(issuer *authtest.Issuer) *options.Options {
	opts := options.NewOptions()
	opts.GenericServerRunOptions.Mode = "test"
	opts.DatabaseOptions.DSN = "file:apiserver?mode=memory&cache=shared"
	opts.DatabaseOptions.MaxIdleConnections = 1
	opts.DatabaseOptions.MaxOpenConnections = 1
	opts.DatabaseOptions.MaxConnectionLifeTime = 0
	opts.DatabaseOptions.DropOnStart = true
	opts.AuthOptions.JWKSJSON = string(issuer.JWKS())
	opts.AuthOptions.Audience = issuer.Audience
	opts.AuthOptions.Issuer = issuer.Issuer

	return opts
}

func TestBuildGenericConfig(t *testing.T) {
	opts := options.NewOptions()
	opts.InsecureServing.BindAddress = "0.0.0.0"
	opts.InsecureServing.BindPort = 5000
	opts.FeatureOptions.EnableProfiling = true

	cfg, err := config.CreateConfigFromOptions(opts)
	require.NoError(t, err)

	genericConfig, err := buildGenericConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:5000", genericConfig.InsecureServing.Address)
	assert.True(t, genericConfig.EnableProfiling)
	assert.True(t, genericConfig.Healthz)
	assert.Equal(t, opts.GenericServerRunOptions.Middlewares, genericConfig.Middlewares)
}

func TestCreateAPIServer(t *testing.T) {
	issuer := authtest.NewIssuer()
	opts := newTestOptions(issuer)
	require.NoError(t, opts.Complete())
	require.Empty(t, opts.Validate())

	cfg, err := config.CreateConfigFromOptions(opts)
	require.NoError(t, err)

	server, err := createAPIServer(cfg)
	require.NoError(t, err)
	assert.Same(t, server.store, store.Client())

	prepared := server.PrepareRun()
	engine := prepared.genericAPIServer

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// the database is reset and seeded with water on start
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/drinks", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"drinks":[{"id":1,"title":"water","recipe":[{"name":"water","color":"blue"}]}]}`,
		w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drinks", strings.NewReader(latteBody))
	req.Header.Set("Authorization", issuer.Bearer("post:drinks"))
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/drinks-detail", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	assert.NoError(t, server.store.Close())
}

func TestNewBearerAuth_InvalidJWKS(t *testing.T) {
	opts := newTestOptions(authtest.NewIssuer())
	opts.AuthOptions.JWKSJSON = "not json"

	_, _, err := newBearerAuth(opts.AuthOptions)
	assert.Error(t, err)
}
