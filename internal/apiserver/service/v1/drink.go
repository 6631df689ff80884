// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"context"
	"regexp"

	"github.com/marmotedu/errors"

	v1 "github.com/marmotedu/coffeeshop/api/apiserver/v1"
	"github.com/marmotedu/coffeeshop/internal/apiserver/store"
	"github.com/marmotedu/coffeeshop/internal/pkg/code"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

// duplicateTitle matches unique index violations reported by mysql and sqlite.
var duplicateTitle = regexp.MustCompile(`Duplicate entry '.*' for key '.*title.*'|UNIQUE constraint failed: drink\.title`)

// DrinkSrv defines functions used to handle drink request.
type DrinkSrv interface {
	List(ctx context.Context) ([]*v1.Drink, error)
	Create(ctx context.Context, drink *v1.Drink) error
	Update(ctx context.Context, id int, patch *v1.DrinkPatch) (*v1.Drink, error)
	Delete(ctx context.Context, id int) error
}

type drinkService struct {
	store store.Factory
}

var _ DrinkSrv = (*drinkService)(nil)

func newDrinks(srv *service) *drinkService {
	return &drinkService{store: srv.store}
}

// List returns every drink ordered by id. An empty menu is reported as not found.
func (d *drinkService) List(ctx context.Context) ([]*v1.Drink, error) {
	drinks, err := d.store.Drinks().List(ctx)
	if err != nil {
		log.L(ctx).Errorf("list drinks from storage failed: %s", err.Error())

		return nil, errors.WithCode(code.ErrDatabase, err.Error())
	}

	if len(drinks) == 0 {
		return nil, errors.WithCode(code.ErrDrinkNotFound, "no drinks found")
	}

	log.L(ctx).Debugf("get %d drinks from backend storage.", len(drinks))

	return drinks, nil
}

func (d *drinkService) Create(ctx context.Context, drink *v1.Drink) error {
	if err := d.store.Drinks().Create(ctx, drink); err != nil {
		if duplicateTitle.MatchString(err.Error()) {
			return errors.WithCode(code.ErrDrinkAlreadyExist, err.Error())
		}

		return errors.WithCode(code.ErrUnprocessable, err.Error())
	}

	return nil
}

// Update applies patch to the drink identified by id and returns the stored result.
func (d *drinkService) Update(ctx context.Context, id int, patch *v1.DrinkPatch) (*v1.Drink, error) {
	drink, err := d.store.Drinks().Get(ctx, id)
	if err != nil {
		if errors.IsCode(err, code.ErrDrinkNotFound) {
			return nil, err
		}

		return nil, errors.WithCode(code.ErrBadRequest, err.Error())
	}

	if !patch.Apply(drink) {
		return drink, nil
	}

	if err := d.store.Drinks().Update(ctx, drink); err != nil {
		return nil, errors.WithCode(code.ErrBadRequest, err.Error())
	}

	return drink, nil
}

func (d *drinkService) Delete(ctx context.Context, id int) error {
	if err := d.store.Drinks().Delete(ctx, id); err != nil {
		if errors.IsCode(err, code.ErrDrinkNotFound) {
			return err
		}

		return errors.WithCode(code.ErrUnprocessable, err.Error())
	}

	return nil
}
