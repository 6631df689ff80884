// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/marmotedu/coffeeshop/pkg/auth"
)

// AuthOptions contains configuration items related to the identity provider
// which signs the bearer tokens.
type AuthOptions struct {
	Domain          string        `json:"domain"           mapstructure:"domain"`
	Audience        string        `json:"audience"         mapstructure:"audience"`
	Issuer          string        `json:"issuer"           mapstructure:"issuer"`
	JWKSURL         string        `json:"jwks-url"         mapstructure:"jwks-url"`
	JWKSJSON        string        `json:"-"                mapstructure:"jwks-json"`
	RefreshInterval time.Duration `json:"refresh-interval" mapstructure:"refresh-interval"`
}

// NewAuthOptions creates an AuthOptions object with default parameters.
func NewAuthOptions() *AuthOptions {
	return &AuthOptions{
		RefreshInterval: time.Hour,
	}
}

// Complete derives the issuer and the jwks url from the domain when they are not set.
func (o *AuthOptions) Complete() error {
	domain := strings.TrimSuffix(strings.TrimPrefix(o.Domain, "https://"), "/")
	if domain == "" {
		return nil
	}

	if o.Issuer == "" {
		o.Issuer = fmt.Sprintf("https://%s/", domain)
	}

	if o.JWKSURL == "" {
		o.JWKSURL = fmt.Sprintf("https://%s/.well-known/jwks.json", domain)
	}

	return nil
}

// Validate is used to parse and validate the parameters entered by the user at
// the command line when the program starts.
func (o *AuthOptions) Validate() []error {
	var errs []error

	if o.Domain == "" && o.JWKSURL == "" && o.JWKSJSON == "" {
		errs = append(errs, fmt.Errorf("--auth.domain, --auth.jwks-url or --auth.jwks-json must be set"))
	} else if o.Domain == "" && o.Issuer == "" {
		errs = append(errs, fmt.Errorf("--auth.issuer must be set when --auth.domain is empty"))
	}

	if o.Audience == "" {
		errs = append(errs, fmt.Errorf("--auth.audience must be set"))
	}

	if o.RefreshInterval < 0 {
		errs = append(errs, fmt.Errorf("--auth.refresh-interval must not be negative"))
	}

	return errs
}

// AddFlags adds flags related to the identity provider for a specific api server to the
// specified FlagSet.
func (o *AuthOptions) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		return
	}

	fs.StringVar(&o.Domain, "auth.domain", o.Domain, ""+
		"Domain of the identity provider, e.g. coffeeshop.us.auth0.com. "+
		"Used to derive --auth.issuer and --auth.jwks-url when they are not set.")

	fs.StringVar(&o.Audience, "auth.audience", o.Audience, ""+
		"Expected audience of the bearer tokens, the identifier of this api.")

	fs.StringVar(&o.Issuer, "auth.issuer", o.Issuer, ""+
		"Expected issuer of the bearer tokens.")

	fs.StringVar(&o.JWKSURL, "auth.jwks-url", o.JWKSURL, ""+
		"URL of the json web key set used to verify token signatures.")

	fs.StringVar(&o.JWKSJSON, "auth.jwks-json", o.JWKSJSON, ""+
		"Inline json web key set. When set no remote key set is fetched.")

	fs.DurationVar(&o.RefreshInterval, "auth.refresh-interval", o.RefreshInterval, ""+
		"Interval to refresh the remote json web key set. Zero disables periodic refresh.")
}

// NewKeySource creates the key source described by the options.
func (o *AuthOptions) NewKeySource() (*auth.JWKSKeySource, error) {
	if o.JWKSJSON != "" {
		return auth.NewJWKSFromJSON([]byte(o.JWKSJSON))
	}

	return auth.NewJWKSKeySource(o.JWKSURL, o.RefreshInterval)
}
