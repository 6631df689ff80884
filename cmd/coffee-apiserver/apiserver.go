// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// coffee-apiserver is the api server of the coffee shop.
// It serves the drink menu and lets authorized staff manage it.
package main

import (
	"math/rand"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/marmotedu/coffeeshop/internal/apiserver"
)

func main() {
	rand.Seed(time.Now().UTC().UnixNano())

	apiserver.NewApp("coffee-apiserver").Run()
}
