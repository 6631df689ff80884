// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, address string) *GenericAPIServer {
	t.Helper()

	cfg := NewConfig()
	cfg.Mode = gin.TestMode
	cfg.Middlewares = []string{"recovery", "unknown"}
	cfg.InsecureServing = &InsecureServingInfo{Address: address}

	s, err := cfg.Complete().New()
	require.NoError(t, err)

	return s
}

func TestGenericAPIServer_InstallAPIs(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:0")

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gitVersion")

	w = httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfig_Complete(t *testing.T) {
	cfg := &Config{}
	completed := cfg.Complete()
	assert.Equal(t, "127.0.0.1:8080", completed.InsecureServing.Address)
	assert.Equal(t, 10*time.Second, completed.ShutdownTimeout)
}

func TestGenericAPIServer_RunClose(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := l.Addr().String()
	require.NoError(t, l.Close())

	s := newTestServer(t, address)
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + address + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	s.Close()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestGenericAPIServer_CloseStopsPing(t *testing.T) {
	s := newTestServer(t, "127.0.0.1:1")
	s.Close()

	ctx, cancel := context.WithTimeout(s.ctx, time.Second)
	defer cancel()

	start := time.Now()
	assert.Error(t, s.ping(ctx))
	assert.Less(t, time.Since(start), time.Second)
	assert.Error(t, s.ctx.Err())
}
