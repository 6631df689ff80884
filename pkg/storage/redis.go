// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package storage wraps the redis client used to notify other services of data changes.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/marmotedu/coffeeshop/pkg/log"
)

// Publisher publishes a message on a channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, message string) error
}

// Config defines options for redis.
type Config struct {
	Host     string
	Port     int
	Password string
	Database int
	Timeout  time.Duration
}

// RedisPublisher publishes through a single redis node.
type RedisPublisher struct {
	client *redis.Client
}

var _ Publisher = &RedisPublisher{}

// NewRedisPublisher creates a publisher. The connection is established lazily by the client.
func NewRedisPublisher(config *Config) *RedisPublisher {
	timeout := 5 * time.Second
	if config.Timeout > 0 {
		timeout = config.Timeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password:     config.Password,
		DB:           config.Database,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	return &RedisPublisher{client: client}
}

// Ping checks that redis is reachable.
func (r *RedisPublisher) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Publish implements Publisher.
func (r *RedisPublisher) Publish(ctx context.Context, channel string, message string) error {
	if err := r.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}

	return nil
}

// Close closes the client.
func (r *RedisPublisher) Close() error {
	return r.client.Close()
}

// ConnectToRedis pings redis until it answers or ctx is done, logging every failure.
func ConnectToRedis(ctx context.Context, r *RedisPublisher) {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	for {
		err := r.Ping(ctx)
		if err == nil {
			log.Info("redis is connected")

			return
		}

		log.Warnf("redis is not reachable: %s", err.Error())

		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}
