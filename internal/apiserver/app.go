// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package apiserver does all the work necessary to create a coffee shop APIServer.
package apiserver

import (
	"github.com/MakeNowJust/heredoc/v2"

	"github.com/marmotedu/coffeeshop/internal/apiserver/config"
	"github.com/marmotedu/coffeeshop/internal/apiserver/options"
	"github.com/marmotedu/coffeeshop/pkg/app"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

var commandDesc = heredoc.Doc(`
	The coffee shop API server serves the drink menu of the shop.

	Everybody can read the public menu. Baristas and managers, authenticated
	with bearer tokens issued by the identity provider, can read the detailed
	recipes, and managers can add, change and remove drinks.`)

// NewApp creates an App object with default parameters.
func NewApp(basename string) *app.App {
	opts := options.NewOptions()
	application := app.NewApp("Coffee Shop API Server",
		basename,
		app.WithOptions(opts),
		app.WithDescription(commandDesc),
		app.WithDefaultValidArgs(),
		app.WithRunFunc(run(opts)),
	)

	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		log.Init(opts.Log)
		defer log.Flush()

		cfg, err := config.CreateConfigFromOptions(opts)
		if err != nil {
			return err
		}

		return Run(cfg)
	}
}
