// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package sql

import (
	"context"

	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	v1 "github.com/marmotedu/coffeeshop/api/apiserver/v1"
	"github.com/marmotedu/coffeeshop/internal/pkg/code"
)

type drinks struct {
	db *gorm.DB
}

func newDrinks(ds *datastore) *drinks {
	return &drinks{ds.db}
}

// List return all drinks ordered by id.
func (d *drinks) List(ctx context.Context) ([]*v1.Drink, error) {
	ret := make([]*v1.Drink, 0)
	if err := d.db.WithContext(ctx).Order("id").Find(&ret).Error; err != nil {
		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return ret, nil
}

// Create creates a new drink.
func (d *drinks) Create(ctx context.Context, drink *v1.Drink) error {
	return d.db.WithContext(ctx).Create(drink).Error
}

// Get return a drink by the drink identifier.
func (d *drinks) Get(ctx context.Context, id int) (*v1.Drink, error) {
	drink := &v1.Drink{}
	err := d.db.WithContext(ctx).Where("id = ?", id).First(drink).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithCode(code.ErrDrinkNotFound, err.Error())
		}

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	return drink, nil
}

// Update updates a drink information.
func (d *drinks) Update(ctx context.Context, drink *v1.Drink) error {
	return d.db.WithContext(ctx).Save(drink).Error
}

// Delete deletes the drink by the drink identifier.
func (d *drinks) Delete(ctx context.Context, id int) error {
	result := d.db.WithContext(ctx).Where("id = ?", id).Delete(&v1.Drink{})
	if result.Error != nil {
		return errors.WithCode(code.ErrDatabase, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		return errors.WithCode(code.ErrDrinkNotFound, "drink %d not found", id)
	}

	return nil
}
