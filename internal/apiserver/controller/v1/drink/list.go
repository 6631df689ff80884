// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package drink

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/marmotedu/coffeeshop/api/apiserver/v1"
	"github.com/marmotedu/coffeeshop/internal/pkg/core"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

// List returns the public menu, without recipe quantities.
func (d *DrinkController) List(c *gin.Context) {
	log.L(c).Info("list drink function called.")

	drinks, err := d.srv.Drinks().List(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	short := make([]v1.DrinkShort, 0, len(drinks))
	for _, drink := range drinks {
		short = append(short, drink.Short())
	}

	core.WriteResponse(c, nil, DrinksResponse{Success: true, Drinks: short})
}

// ListDetail returns the menu with full recipes.
func (d *DrinkController) ListDetail(c *gin.Context) {
	log.L(c).Info("list drink detail function called.")

	drinks, err := d.srv.Drinks().List(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	long := make([]v1.DrinkLong, 0, len(drinks))
	for _, drink := range drinks {
		long = append(long, drink.Long())
	}

	core.WriteResponse(c, nil, DrinksResponse{Success: true, Drinks: long})
}
