// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package apiserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/marmotedu/coffeeshop/internal/apiserver/config"
	"github.com/marmotedu/coffeeshop/internal/apiserver/store"
	"github.com/marmotedu/coffeeshop/internal/apiserver/store/sql"
	"github.com/marmotedu/coffeeshop/internal/pkg/middleware"
	"github.com/marmotedu/coffeeshop/internal/pkg/middleware/auth"
	genericoptions "github.com/marmotedu/coffeeshop/internal/pkg/options"
	genericapiserver "github.com/marmotedu/coffeeshop/internal/pkg/server"
	jwtauth "github.com/marmotedu/coffeeshop/pkg/auth"
	"github.com/marmotedu/coffeeshop/pkg/log"
	"github.com/marmotedu/coffeeshop/pkg/shutdown"
	"github.com/marmotedu/coffeeshop/pkg/shutdown/shutdownmanagers/posixsignal"
	"github.com/marmotedu/coffeeshop/pkg/storage"
)

type apiServer struct {
	gs               *shutdown.GracefulShutdown
	redisOptions     *genericoptions.RedisOptions
	genericAPIServer *genericapiserver.GenericAPIServer
	store            store.Factory
	bearer           auth.BearerStrategy
	keys             *jwtauth.JWKSKeySource
	publisher        *storage.RedisPublisher
}

type preparedAPIServer struct {
	*apiServer
}

func createAPIServer(cfg *config.Config) (*apiServer, error) {
	gs := shutdown.New()
	gs.AddShutdownManager(posixsignal.NewPosixSignalManager())
	gs.SetErrorHandler(shutdown.ErrorFunc(func(err error) {
		log.Errorf("graceful shutdown failed: %s", err.Error())
	}))

	genericConfig, err := buildGenericConfig(cfg)
	if err != nil {
		return nil, err
	}

	genericServer, err := genericConfig.Complete().New()
	if err != nil {
		return nil, err
	}

	storeIns, err := sql.GetSQLFactoryOr(cfg.DatabaseOptions)
	if err != nil {
		return nil, err
	}
	store.SetClient(storeIns)

	bearer, keys, err := newBearerAuth(cfg.AuthOptions)
	if err != nil {
		_ = storeIns.Close()

		return nil, err
	}

	server := &apiServer{
		gs:               gs,
		redisOptions:     cfg.RedisOptions,
		genericAPIServer: genericServer,
		store:            storeIns,
		bearer:           bearer,
		keys:             keys,
	}

	return server, nil
}

func (s *apiServer) PrepareRun() preparedAPIServer {
	var drinkMiddlewares []gin.HandlerFunc
	if s.redisOptions.Enabled {
		s.initRedisStore()
		drinkMiddlewares = append(drinkMiddlewares, middleware.Publish(s.publisher, s.redisOptions.Channel))
	}

	initRouter(s.genericAPIServer.Engine, s.store, s.bearer, drinkMiddlewares...)

	s.gs.AddShutdownCallback(shutdown.ShutdownFunc(func(string) error {
		s.genericAPIServer.Close()

		if s.keys != nil {
			s.keys.Close()
		}

		if s.publisher != nil {
			_ = s.publisher.Close()
		}

		return s.store.Close()
	}))

	return preparedAPIServer{s}
}

func (s preparedAPIServer) Run() error {
	// start shutdown managers
	if err := s.gs.Start(); err != nil {
		log.Fatalf("start shutdown manager failed: %s", err.Error())
	}

	return s.genericAPIServer.Run()
}

func buildGenericConfig(cfg *config.Config) (genericConfig *genericapiserver.Config, lastErr error) {
	genericConfig = genericapiserver.NewConfig()
	if lastErr = cfg.GenericServerRunOptions.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	if lastErr = cfg.FeatureOptions.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	if lastErr = cfg.InsecureServing.ApplyTo(genericConfig); lastErr != nil {
		return
	}

	return
}

func (s *apiServer) initRedisStore() {
	ctx, cancel := context.WithCancel(context.Background())
	s.gs.AddShutdownCallback(shutdown.ShutdownFunc(func(string) error {
		cancel()

		return nil
	}))

	s.publisher = storage.NewRedisPublisher(s.redisOptions.Config())

	// try to connect to redis
	go storage.ConnectToRedis(ctx, s.publisher)
}
