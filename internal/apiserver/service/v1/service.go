// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package v1

//go:generate mockgen -self_package=github.com/marmotedu/coffeeshop/internal/apiserver/service/v1 -destination mock_service.go -package v1 github.com/marmotedu/coffeeshop/internal/apiserver/service/v1 Service,DrinkSrv

import "github.com/marmotedu/coffeeshop/internal/apiserver/store"

// Service defines functions used to return resource interface.
type Service interface {
	Drinks() DrinkSrv
}

type service struct {
	store store.Factory
}

// NewService returns Service interface.
func NewService(store store.Factory) Service {
	return &service{
		store: store,
	}
}

func (s *service) Drinks() DrinkSrv {
	return newDrinks(s)
}
