// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package apiserver

import (
	genericoptions "github.com/marmotedu/coffeeshop/internal/pkg/options"
	"github.com/marmotedu/coffeeshop/internal/pkg/middleware/auth"
	jwtauth "github.com/marmotedu/coffeeshop/pkg/auth"
	"github.com/marmotedu/coffeeshop/pkg/log"
)

// newBearerAuth creates the bearer strategy verifying tokens of the configured identity provider.
// The returned key source must be closed on shutdown.
func newBearerAuth(opts *genericoptions.AuthOptions) (auth.BearerStrategy, *jwtauth.JWKSKeySource, error) {
	keys, err := opts.NewKeySource()
	if err != nil {
		return auth.BearerStrategy{}, nil, err
	}

	log.Infof("verify bearer tokens issued by `%s` for audience `%s`", opts.Issuer, opts.Audience)

	return auth.NewBearerStrategy(jwtauth.NewVerifier(keys, opts.Audience, opts.Issuer)), keys, nil
}
