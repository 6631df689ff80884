// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package drink

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/marmotedu/errors"
	"github.com/stretchr/testify/assert"

	v1 "github.com/marmotedu/coffeeshop/api/apiserver/v1"
	srvv1 "github.com/marmotedu/coffeeshop/internal/apiserver/service/v1"
	"github.com/marmotedu/coffeeshop/internal/pkg/code"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func latte() *v1.Drink {
	return &v1.Drink{
		ID:    2,
		Title: "Latte",
		Recipe: v1.Recipe{
			{Name: "milk", Color: "grey", Parts: 3},
			{Name: "coffee", Color: "brown", Parts: 1},
		},
	}
}

func newEngine(t *testing.T) (*gin.Engine, *srvv1.MockDrinkSrv) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	drinks := srvv1.NewMockDrinkSrv(ctrl)
	srv := srvv1.NewMockService(ctrl)
	srv.EXPECT().Drinks().AnyTimes().Return(drinks)

	controller := &DrinkController{srv: srv}
	engine := gin.New()
	engine.GET("/drinks", controller.List)
	engine.GET("/drinks-detail", controller.ListDetail)
	engine.POST("/drinks", controller.Create)
	engine.PATCH("/drinks/:id", controller.Update)
	engine.DELETE("/drinks/:id", controller.Delete)

	return engine, drinks
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	return w
}

func TestDrinkController_List(t *testing.T) {
	engine, drinks := newEngine(t)
	drinks.EXPECT().List(gomock.Any()).Return([]*v1.Drink{latte()}, nil)

	w := do(engine, http.MethodGet, "/drinks", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"drinks":[{"id":2,"title":"Latte",`+
		`"recipe":[{"name":"milk","color":"grey"},{"name":"coffee","color":"brown"}]}]}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "parts")
}

func TestDrinkController_ListDetail(t *testing.T) {
	engine, drinks := newEngine(t)
	drinks.EXPECT().List(gomock.Any()).Return([]*v1.Drink{latte()}, nil)

	w := do(engine, http.MethodGet, "/drinks-detail", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"drinks":[{"id":2,"title":"Latte",`+
		`"recipe":[{"name":"milk","color":"grey","parts":3},{"name":"coffee","color":"brown","parts":1}]}]}`,
		w.Body.String())
}

func TestDrinkController_ListNotFound(t *testing.T) {
	engine, drinks := newEngine(t)
	drinks.EXPECT().List(gomock.Any()).Return(nil, errors.WithCode(code.ErrDrinkNotFound, "no drinks found"))

	w := do(engine, http.MethodGet, "/drinks", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":404,"message":"Resource not found"}`, w.Body.String())
}

func TestDrinkController_Create(t *testing.T) {
	engine, drinks := newEngine(t)
	drinks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, d *v1.Drink) error {
		assert.Equal(t, 0, d.ID)
		d.ID = 7

		return nil
	})

	w := do(engine, http.MethodPost, "/drinks",
		`{"id":99,"title":"Water","recipe":[{"name":"water","color":"blue","parts":1}]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"drinks":[{"id":7,"title":"Water",`+
		`"recipe":[{"name":"water","color":"blue","parts":1}]}]}`, w.Body.String())
}

func TestDrinkController_CreateErrors(t *testing.T) {
	engine, drinks := newEngine(t)

	w := do(engine, http.MethodPost, "/drinks", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":400,"message":"Bad Request"}`, w.Body.String())

	drinks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.WithCode(code.ErrDrinkAlreadyExist, "duplicate"))
	w = do(engine, http.MethodPost, "/drinks", `{"title":"Water","recipe":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"success":false,"error":422,"message":"unprocessable"}`, w.Body.String())
}

func TestDrinkController_Update(t *testing.T) {
	engine, drinks := newEngine(t)
	drinks.EXPECT().Update(gomock.Any(), 2, gomock.Any()).DoAndReturn(
		func(_ interface{}, _ int, patch *v1.DrinkPatch) (*v1.Drink, error) {
			assert.Equal(t, "Flat white", pointer.GetString(patch.Title))
			assert.Nil(t, patch.Recipe)

			d := latte()
			patch.Apply(d)

			return d, nil
		})

	w := do(engine, http.MethodPatch, "/drinks/2", `{"title":"Flat white"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Flat white"`)
	assert.Contains(t, w.Body.String(), `"parts":3`)
}

func TestDrinkController_UpdateErrors(t *testing.T) {
	engine, drinks := newEngine(t)

	w := do(engine, http.MethodPatch, "/drinks/latte", `{"title":"New"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(engine, http.MethodPatch, "/drinks/2", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	drinks.EXPECT().Update(gomock.Any(), 9999, gomock.Any()).Return(nil, errors.WithCode(code.ErrDrinkNotFound, "gone"))
	w = do(engine, http.MethodPatch, "/drinks/9999", `{"title":"New"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":404,"message":"Resource not found"}`, w.Body.String())
}

func TestDrinkController_Delete(t *testing.T) {
	engine, drinks := newEngine(t)
	gomock.InOrder(
		drinks.EXPECT().Delete(gomock.Any(), 2).Return(nil),
		drinks.EXPECT().Delete(gomock.Any(), 2).Return(errors.WithCode(code.ErrDrinkNotFound, "gone")),
	)

	w := do(engine, http.MethodDelete, "/drinks/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"delete":2}`, w.Body.String())

	w = do(engine, http.MethodDelete, "/drinks/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(engine, http.MethodDelete, "/drinks/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
