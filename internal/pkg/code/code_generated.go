// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package code

// External messages are the ones clients of the drinks api have always received.
const (
	msgOK          = "OK"
	msgInternal    = "Internal server error"
	msgBadRequest  = "Bad Request"
	msgNotFound    = "Resource not found"
	msgUnprocessed = "unprocessable"
)

// init register error codes defines in this source code to `github.com/marmotedu/errors`.
func init() {
	register(ErrSuccess, 200, msgOK)
	register(ErrUnknown, 500, msgInternal)
	register(ErrBind, 400, msgBadRequest)
	register(ErrValidation, 400, msgBadRequest)
	register(ErrPageNotFound, 404, msgNotFound)
	register(ErrDatabase, 500, msgInternal)
	register(ErrDrinkNotFound, 404, msgNotFound)
	register(ErrDrinkAlreadyExist, 422, msgUnprocessed)
	register(ErrUnprocessable, 422, msgUnprocessed)
	register(ErrBadRequest, 400, msgBadRequest)
}
