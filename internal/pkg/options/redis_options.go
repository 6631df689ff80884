// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/marmotedu/coffeeshop/pkg/storage"
)

// RedisOptions defines options for the redis the drink change notifications are published to.
type RedisOptions struct {
	Enabled  bool          `json:"enabled"  mapstructure:"enabled"`
	Host     string        `json:"host"     mapstructure:"host"     description:"Redis service host address"`
	Port     int           `json:"port"     mapstructure:"port"`
	Password string        `json:"-"        mapstructure:"password"`
	Database int           `json:"database" mapstructure:"database"`
	Channel  string        `json:"channel"  mapstructure:"channel"`
	Timeout  time.Duration `json:"timeout"  mapstructure:"timeout"`
}

// NewRedisOptions create a `zero` value instance.
func NewRedisOptions() *RedisOptions {
	return &RedisOptions{
		Enabled:  false,
		Host:     "127.0.0.1",
		Port:     6379,
		Password: "",
		Database: 0,
		Channel:  "coffeeshop.drinks.changed",
		Timeout:  5 * time.Second,
	}
}

// Validate verifies flags passed to RedisOptions.
func (o *RedisOptions) Validate() []error {
	errs := []error{}

	if !o.Enabled {
		return errs
	}

	if o.Host == "" {
		errs = append(errs, fmt.Errorf("--redis.host must be set when redis is enabled"))
	}

	if o.Channel == "" {
		errs = append(errs, fmt.Errorf("--redis.channel must be set when redis is enabled"))
	}

	return errs
}

// AddFlags adds flags related to redis storage for a specific APIServer to the specified FlagSet.
func (o *RedisOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Enabled, "redis.enabled", o.Enabled, ""+
		"Publish a notification to redis after the drink menu changed.")

	fs.StringVar(&o.Host, "redis.host", o.Host, "Hostname of your Redis server.")
	fs.IntVar(&o.Port, "redis.port", o.Port, "The port the Redis server is listening on.")
	fs.StringVar(&o.Password, "redis.password", o.Password, "Optional auth password for Redis db.")

	fs.IntVar(&o.Database, "redis.database", o.Database, ""+
		"By default, the database is 0.")

	fs.StringVar(&o.Channel, "redis.channel", o.Channel, "Channel the drink change notifications are published to.")
	fs.DurationVar(&o.Timeout, "redis.timeout", o.Timeout, "Timeout when connecting to redis service.")
}

// Config returns the storage config of the redis publisher.
func (o *RedisOptions) Config() *storage.Config {
	return &storage.Config{
		Host:     o.Host,
		Port:     o.Port,
		Password: o.Password,
		Database: o.Database,
		Timeout:  o.Timeout,
	}
}
