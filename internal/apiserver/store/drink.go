// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package store

import (
	"context"

	v1 "github.com/marmotedu/coffeeshop/api/apiserver/v1"
)

// DrinkStore defines the drink storage interface.
type DrinkStore interface {
	List(ctx context.Context) ([]*v1.Drink, error)
	Create(ctx context.Context, drink *v1.Drink) error
	Get(ctx context.Context, id int) (*v1.Drink, error)
	Update(ctx context.Context, drink *v1.Drink) error
	Delete(ctx context.Context, id int) error
}
