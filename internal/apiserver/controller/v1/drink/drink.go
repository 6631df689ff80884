// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package drink implements the handlers of the drink resource.
package drink

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/marmotedu/errors"

	srvv1 "github.com/marmotedu/coffeeshop/internal/apiserver/service/v1"
	"github.com/marmotedu/coffeeshop/internal/apiserver/store"
	"github.com/marmotedu/coffeeshop/internal/pkg/code"
)

// DrinkController create a drink handler used to handle request for drink resource.
type DrinkController struct {
	srv srvv1.Service
}

// NewDrinkController creates a drink handler.
func NewDrinkController(store store.Factory) *DrinkController {
	return &DrinkController{
		srv: srvv1.NewService(store),
	}
}

// DrinksResponse is returned by every handler which responds with drinks.
type DrinksResponse struct {
	Success bool        `json:"success"`
	Drinks  interface{} `json:"drinks"`
}

// DeleteResponse is returned after a drink was deleted.
type DeleteResponse struct {
	Success bool `json:"success"`
	Delete  int  `json:"delete"`
}

// drinkID reads the integer id path parameter. Non-integer ids match no drink.
func drinkID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.WithCode(code.ErrPageNotFound, "drink id %q is not an integer", c.Param("id"))
	}

	return id, nil
}
