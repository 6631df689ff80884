// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package core writes every JSON response of the api, so that all error bodies share one shape.
package core

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marmotedu/errors"

	"github.com/marmotedu/coffeeshop/pkg/auth"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

// ErrResponse defines the return messages when an error occurred.
// Code is only set for authorization failures.
type ErrResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// WriteResponse write an error or the response data into http response body.
// It use errors.ParseCoder to parse any error into errors.Coder, so the http status
// and message of a coded error come from the code registry.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		c.JSON(WriteError(c, err))

		return
	}

	c.JSON(http.StatusOK, data)
}

// WriteError logs err and returns the status and body it should be reported with.
func WriteError(c *gin.Context, err error) (int, ErrResponse) {
	if authErr, ok := err.(*auth.AuthError); ok {
		log.L(c).Infow("request rejected", "code", authErr.Code, "description", authErr.Description)

		return authErr.StatusCode, ErrResponse{
			Success: false,
			Error:   authErr.StatusCode,
			Message: authErr.Description,
			Code:    authErr.Code,
		}
	}

	log.L(c).Errorf("%#+v", err)
	coder := errors.ParseCoder(err)

	return coder.HTTPStatus(), ErrResponse{
		Success: false,
		Error:   coder.HTTPStatus(),
		Message: coder.String(),
	}
}
