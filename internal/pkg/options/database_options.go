// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"gorm.io/gorm"

	"github.com/marmotedu/coffeeshop/pkg/db"
)

// DatabaseOptions defines options for the drink database.
type DatabaseOptions struct {
	Type                  string        `json:"type,omitempty"                     mapstructure:"type"`
	DSN                   string        `json:"-"                                  mapstructure:"dsn"`
	Host                  string        `json:"host,omitempty"                     mapstructure:"host"`
	Username              string        `json:"username,omitempty"                 mapstructure:"username"`
	Password              string        `json:"-"                                  mapstructure:"password"`
	Database              string        `json:"database"                           mapstructure:"database"`
	MaxIdleConnections    int           `json:"max-idle-connections,omitempty"     mapstructure:"max-idle-connections"`
	MaxOpenConnections    int           `json:"max-open-connections,omitempty"     mapstructure:"max-open-connections"`
	MaxConnectionLifeTime time.Duration `json:"max-connection-life-time,omitempty" mapstructure:"max-connection-life-time"`
	LogLevel              int           `json:"log-level"                          mapstructure:"log-level"`
	DropOnStart           bool          `json:"drop-on-start"                      mapstructure:"drop-on-start"`
}

// NewDatabaseOptions create a `zero` value instance.
func NewDatabaseOptions() *DatabaseOptions {
	return &DatabaseOptions{
		Type:                  db.TypeSQLite,
		Host:                  "127.0.0.1:3306",
		Username:              "",
		Password:              "",
		Database:              "coffeeshop.db",
		MaxIdleConnections:    100,
		MaxOpenConnections:    100,
		MaxConnectionLifeTime: time.Duration(10) * time.Second,
		LogLevel:              1, // Silent
	}
}

// Validate verifies flags passed to DatabaseOptions.
func (o *DatabaseOptions) Validate() []error {
	errs := []error{}

	switch o.Type {
	case db.TypeSQLite:
		if o.DSN == "" && o.Database == "" {
			errs = append(errs, fmt.Errorf("--database.database or --database.dsn must be set for sqlite"))
		}
	case db.TypeMySQL:
		if o.DSN == "" && (o.Host == "" || o.Database == "") {
			errs = append(errs, fmt.Errorf("--database.host and --database.database or --database.dsn must be set for mysql"))
		}
	default:
		errs = append(errs, fmt.Errorf("--database.type %q is not supported, must be %s or %s",
			o.Type, db.TypeSQLite, db.TypeMySQL))
	}

	if o.LogLevel < 1 || o.LogLevel > 4 {
		errs = append(errs, fmt.Errorf("--database.log-level %d must be between 1 and 4", o.LogLevel))
	}

	return errs
}

// AddFlags adds flags related to the database for a specific APIServer to the specified FlagSet.
func (o *DatabaseOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Type, "database.type", o.Type, ""+
		"Database driver, sqlite or mysql.")

	fs.StringVar(&o.DSN, "database.dsn", o.DSN, ""+
		"Full data source name. When set it takes precedence over host, username, password and database.")

	fs.StringVar(&o.Host, "database.host", o.Host, ""+
		"MySQL service host address. Ignored for sqlite.")

	fs.StringVar(&o.Username, "database.username", o.Username, ""+
		"Username for access to mysql service.")

	fs.StringVar(&o.Password, "database.password", o.Password, ""+
		"Password for access to mysql, should be used together with username.")

	fs.StringVar(&o.Database, "database.database", o.Database, ""+
		"Database name for mysql, or database file path for sqlite.")

	fs.IntVar(&o.MaxIdleConnections, "database.max-idle-connections", o.MaxIdleConnections, ""+
		"Maximum idle connections allowed to connect to the database.")

	fs.IntVar(&o.MaxOpenConnections, "database.max-open-connections", o.MaxOpenConnections, ""+
		"Maximum open connections allowed to connect to the database.")

	fs.DurationVar(&o.MaxConnectionLifeTime, "database.max-connection-life-time", o.MaxConnectionLifeTime, ""+
		"Maximum connection life time allowed to connect to the database.")

	fs.IntVar(&o.LogLevel, "database.log-level", o.LogLevel, ""+
		"Specify gorm log level, 1 silent, 2 error, 3 warn, 4 info.")

	fs.BoolVar(&o.DropOnStart, "database.drop-on-start", o.DropOnStart, ""+
		"Drop and recreate the drink table on start, then seed it with a sample drink. Data is lost.")
}

// dataSourceName returns the DSN handed to the gorm dialector.
func (o *DatabaseOptions) dataSourceName() string {
	if o.DSN != "" {
		return o.DSN
	}

	if o.Type == db.TypeMySQL {
		return fmt.Sprintf(`%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=%t&loc=%s`,
			o.Username,
			o.Password,
			o.Host,
			o.Database,
			true,
			"Local")
	}

	return o.Database
}

// NewClient create database client with the given config.
func (o *DatabaseOptions) NewClient() (*gorm.DB, error) {
	opts := &db.Options{
		Type:                  o.Type,
		DSN:                   o.dataSourceName(),
		MaxIdleConnections:    o.MaxIdleConnections,
		MaxOpenConnections:    o.MaxOpenConnections,
		MaxConnectionLifeTime: o.MaxConnectionLifeTime,
		LogLevel:              o.LogLevel,
		Logger:                db.NewLogger(o.LogLevel),
	}

	return db.New(opts)
}
