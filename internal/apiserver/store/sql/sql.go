// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package sql implements store.Factory on top of gorm, for sqlite and mysql.
package sql

import (
	"fmt"
	"sync"

	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	v1 "github.com/marmotedu/coffeeshop/api/apiserver/v1"
	"github.com/marmotedu/coffeeshop/internal/apiserver/store"
	genericoptions "github.com/marmotedu/coffeeshop/internal/pkg/options"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

type datastore struct {
	db *gorm.DB
}

func (ds *datastore) Drinks() store.DrinkStore {
	return newDrinks(ds)
}

func (ds *datastore) Close() error {
	db, err := ds.db.DB()
	if err != nil {
		return errors.Wrap(err, "get gorm db instance failed")
	}

	return db.Close()
}

var (
	sqlFactory store.Factory
	once       sync.Once
)

// GetSQLFactoryOr create sql factory with the given config. The first successful
// call opens the database and creates the schema, later calls return the same factory.
func GetSQLFactoryOr(opts *genericoptions.DatabaseOptions) (store.Factory, error) {
	if opts == nil && sqlFactory == nil {
		return nil, fmt.Errorf("failed to get sql store fatory")
	}

	var err error
	once.Do(func() {
		var factory store.Factory
		factory, err = NewFactory(opts)
		sqlFactory = factory
	})

	if sqlFactory == nil || err != nil {
		return nil, fmt.Errorf("failed to get sql store fatory, sqlFactory: %+v, error: %w", sqlFactory, err)
	}

	return sqlFactory, nil
}

// NewFactory opens a database and migrates the schema without touching the shared factory.
func NewFactory(opts *genericoptions.DatabaseOptions) (store.Factory, error) {
	dbIns, err := opts.NewClient()
	if err != nil {
		return nil, err
	}

	if opts.DropOnStart {
		if err := resetDatabase(dbIns); err != nil {
			return nil, err
		}
	} else if err := migrateDatabase(dbIns); err != nil {
		return nil, err
	}

	return &datastore{dbIns}, nil
}

// migrateDatabase run auto migration for given models, will only add missing fields,
// won't delete/change current data.
func migrateDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(&v1.Drink{}); err != nil {
		return errors.Wrap(err, "migrate drink model failed")
	}

	return nil
}

// resetDatabase drops the drink table, recreates it and seeds a sample drink.
func resetDatabase(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&v1.Drink{}); err != nil {
		return errors.Wrap(err, "drop drink table failed")
	}

	if err := migrateDatabase(db); err != nil {
		return err
	}

	water := &v1.Drink{
		Title:  "water",
		Recipe: v1.Recipe{{Name: "water", Color: "blue", Parts: 1}},
	}
	if err := db.Create(water).Error; err != nil {
		return errors.Wrap(err, "seed drink table failed")
	}

	log.Infof("drink table reset, seeded drink `%s` with id %d", water.Title, water.ID)

	return nil
}
