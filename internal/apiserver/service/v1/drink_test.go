// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

import (
	"context"
	"fmt"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/golang/mock/gomock"
	"github.com/marmotedu/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	v1 "github.com/marmotedu/coffeeshop/api/apiserver/v1"
	"github.com/marmotedu/coffeeshop/internal/apiserver/store"
	"github.com/marmotedu/coffeeshop/internal/pkg/code"
)

type DrinkServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	factory *store.MockFactory
	drinks  *store.MockDrinkStore
	srv     DrinkSrv
	ctx     context.Context
}

func (s *DrinkServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.factory = store.NewMockFactory(s.ctrl)
	s.drinks = store.NewMockDrinkStore(s.ctrl)
	s.factory.EXPECT().Drinks().AnyTimes().Return(s.drinks)
	s.srv = NewService(s.factory).Drinks()
	s.ctx = context.Background()
}

func (s *DrinkServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func water() *v1.Drink {
	return &v1.Drink{ID: 1, Title: "Water", Recipe: v1.Recipe{{Name: "water", Color: "blue", Parts: 1}}}
}

func (s *DrinkServiceSuite) TestList() {
	s.drinks.EXPECT().List(gomock.Any()).Return([]*v1.Drink{water()}, nil)

	drinks, err := s.srv.List(s.ctx)
	s.NoError(err)
	s.Len(drinks, 1)
}

func (s *DrinkServiceSuite) TestListEmptyIsNotFound() {
	s.drinks.EXPECT().List(gomock.Any()).Return([]*v1.Drink{}, nil)

	_, err := s.srv.List(s.ctx)
	s.True(errors.IsCode(err, code.ErrDrinkNotFound))
}

func (s *DrinkServiceSuite) TestListStoreFailure() {
	s.drinks.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("database is locked"))

	_, err := s.srv.List(s.ctx)
	s.True(errors.IsCode(err, code.ErrDatabase))
}

func (s *DrinkServiceSuite) TestCreate() {
	s.drinks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.NoError(s.srv.Create(s.ctx, water()))
}

func (s *DrinkServiceSuite) TestCreateFailures() {
	s.drinks.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("UNIQUE constraint failed: drink.title"))
	err := s.srv.Create(s.ctx, water())
	s.True(errors.IsCode(err, code.ErrDrinkAlreadyExist))
	s.Equal(422, errors.ParseCoder(err).HTTPStatus())

	s.drinks.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("Error 1062: Duplicate entry 'Water' for key 'idx_drink_title'"))
	s.True(errors.IsCode(s.srv.Create(s.ctx, water()), code.ErrDrinkAlreadyExist))

	s.drinks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("title: non zero value required"))
	err = s.srv.Create(s.ctx, water())
	s.True(errors.IsCode(err, code.ErrUnprocessable))
	s.Equal(422, errors.ParseCoder(err).HTTPStatus())
}

func (s *DrinkServiceSuite) TestUpdateTitleOnly() {
	s.drinks.EXPECT().Get(gomock.Any(), 1).Return(water(), nil)
	s.drinks.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *v1.Drink) error {
		s.Equal("New", d.Title)
		s.Equal(water().Recipe, d.Recipe)

		return nil
	})

	drink, err := s.srv.Update(s.ctx, 1, &v1.DrinkPatch{Title: pointer.ToString("New")})
	s.NoError(err)
	s.Equal("New", drink.Title)
}

func (s *DrinkServiceSuite) TestUpdateNothingSupplied() {
	s.drinks.EXPECT().Get(gomock.Any(), 1).Return(water(), nil)

	drink, err := s.srv.Update(s.ctx, 1, &v1.DrinkPatch{Title: pointer.ToString("")})
	s.NoError(err)
	s.Equal("Water", drink.Title)
}

func (s *DrinkServiceSuite) TestUpdateFailures() {
	s.drinks.EXPECT().Get(gomock.Any(), 9999).Return(nil, errors.WithCode(code.ErrDrinkNotFound, "record not found"))
	_, err := s.srv.Update(s.ctx, 9999, &v1.DrinkPatch{Title: pointer.ToString("New")})
	s.True(errors.IsCode(err, code.ErrDrinkNotFound))

	s.drinks.EXPECT().Get(gomock.Any(), 1).Return(water(), nil)
	s.drinks.EXPECT().Update(gomock.Any(), gomock.Any()).Return(fmt.Errorf("UNIQUE constraint failed: drink.title"))
	_, err = s.srv.Update(s.ctx, 1, &v1.DrinkPatch{Title: pointer.ToString("Latte")})
	s.True(errors.IsCode(err, code.ErrBadRequest))
	s.Equal(400, errors.ParseCoder(err).HTTPStatus())
}

func (s *DrinkServiceSuite) TestDelete() {
	s.drinks.EXPECT().Delete(gomock.Any(), 1).Return(nil)
	s.NoError(s.srv.Delete(s.ctx, 1))

	s.drinks.EXPECT().Delete(gomock.Any(), 1).Return(errors.WithCode(code.ErrDrinkNotFound, "drink 1 not found"))
	s.True(errors.IsCode(s.srv.Delete(s.ctx, 1), code.ErrDrinkNotFound))

	s.drinks.EXPECT().Delete(gomock.Any(), 2).Return(errors.WithCode(code.ErrDatabase, "disk I/O error"))
	err := s.srv.Delete(s.ctx, 2)
	s.True(errors.IsCode(err, code.ErrUnprocessable))
	assert.Equal(s.T(), 422, errors.ParseCoder(err).HTTPStatus())
}

func TestDrinkService(t *testing.T) {
	suite.Run(t, new(DrinkServiceSuite))
}
