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

// Update update a drink info by the drink identifier. Only the supplied
// fields are overwritten.
func (d *DrinkController) Update(c *gin.Context) {
	log.L(c).Info("update drink function called.")

	id, err := drinkID(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	var patch v1.DrinkPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		core.WriteResponse(c, errors.WithCode(code.ErrBind, err.Error()), nil)

		return
	}

	drink, err := d.srv.Drinks().Update(c, id, &patch)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, DrinksResponse{Success: true, Drinks: []v1.DrinkLong{drink.Long()}})
}
