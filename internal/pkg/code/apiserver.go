// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package code

// coffee-apiserver: drink errors.
const (
	// ErrDrinkNotFound - 404: Drink not found.
	ErrDrinkNotFound int = iota + 110001

	// ErrDrinkAlreadyExist - 422: Drink already exist.
	ErrDrinkAlreadyExist

	// ErrUnprocessable - 422: Drink could not be persisted.
	ErrUnprocessable

	// ErrBadRequest - 400: Drink update could not be applied.
	ErrBadRequest
)
