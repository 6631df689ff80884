// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package drink

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/errors"

	v1 "github.com/marmotedu/coffeeshop/api/apiserver/v1"
	"github.com/marmotedu/coffeeshop/internal/pkg/code"
	"github.com/marmotedu/coffeeshop/internal/pkg/core"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

// CreateRequest is the body of a create drink request.
type CreateRequest struct {
	Title  string    `json:"title"`
	Recipe v1.Recipe `json:"recipe"`
}

// Create add new drink to the storage.
func (d *DrinkController) Create(c *gin.Context) {
	log.L(c).Info("drink create function called.")

	var r CreateRequest

	if err := c.ShouldBindJSON(&r); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, err.Error()), nil)

		return
	}

	drink := &v1.Drink{
		Title:  r.Title,
		Recipe: r.Recipe,
	}

	if err := d.srv.Drinks().Create(c, drink); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, DrinksResponse{Success: true, Drinks: []v1.DrinkLong{drink.Long()}})
}
