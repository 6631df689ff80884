// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package drink

import (
	"github.com/gin-gonic/gin"

	"github.com/marmotedu/coffeeshop/internal/pkg/core"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

// Delete delete a drink by the drink identifier.
func (d *DrinkController) Delete(c *gin.Context) {
	log.L(c).Info("delete drink function called.")

	id, err := drinkID(c)
	if err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	if err := d.srv.Drinks().Delete(c, id); err != nil {
		core.WriteResponse(c, err, nil)

		return
	}

	core.WriteResponse(c, nil, DeleteResponse{Success: true, Delete: id})
}
