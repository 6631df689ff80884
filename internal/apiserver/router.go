// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package apiserver

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/coffeeshop/internal/apiserver/controller/v1/drink"
	"github.com/marmotedu/coffeeshop/internal/apiserver/store"
	"github.com/marmotedu/coffeeshop/internal/pkg/code"
	"github.com/marmotedu/coffeeshop/internal/pkg/core"
	"github.com/marmotedu/coffeeshop/internal/pkg/middleware/auth"
	jwtauth "github.com/marmotedu/coffeeshop/pkg/auth"
)

func initRouter(g *gin.Engine, storeIns store.Factory, bearer auth.BearerStrategy, drinkMiddlewares ...gin.HandlerFunc) {
	installMiddleware(g)
	installController(g, storeIns, bearer, drinkMiddlewares...)
}

func installMiddleware(g *gin.Engine) {
}

func installController(
	g *gin.Engine,
	storeIns store.Factory,
	bearer auth.BearerStrategy,
	drinkMiddlewares ...gin.HandlerFunc,
) *gin.Engine {
	g.NoRoute(func(c *gin.Context) {
		core.WriteResponse(c, errors.WithCode(code.ErrPageNotFound, "Page not found."), nil)
	})

	drinkController := drink.NewDrinkController(storeIns)

	// the public menu and the detailed menu
	g.GET("/drinks", drinkController.List)
	g.GET("/drinks-detail", bearer.Require(jwtauth.PermGetDrinksDetail).AuthFunc(), drinkController.ListDetail)

	// drink RESTful resource
	drinkv1 := g.Group("/drinks", drinkMiddlewares...)
	{
		drinkv1.POST("", bearer.Require(jwtauth.PermPostDrinks).AuthFunc(), drinkController.Create)
		drinkv1.PATCH(":id", bearer.Require(jwtauth.PermPatchDrinks).AuthFunc(), drinkController.Update)
		drinkv1.DELETE(":id", bearer.Require(jwtauth.PermDeleteDrinks).AuthFunc(), drinkController.Delete)
	}

	return g
}
