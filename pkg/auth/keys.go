// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package auth

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/MicahParks/keyfunc"
	jwt "github.com/golang-jwt/jwt/v4"

	"github.com/marmotedu/coffeeshop/pkg/log"
)

// ErrKeyNotFound is returned by a KeySource when no key is registered under the requested kid.
var ErrKeyNotFound = errors.New("signing key not found")

// KeySource resolves the public key used to verify a token signed under kid.
type KeySource interface {
	Key(kid string) (interface{}, error)
}

// StaticKeySource serves a fixed set of keys.
type StaticKeySource map[string]interface{}

var _ KeySource = StaticKeySource{}

// NewStaticKeySource returns a KeySource backed by keys.
func NewStaticKeySource(keys map[string]interface{}) StaticKeySource {
	return StaticKeySource(keys)
}

// Key implements KeySource.
func (s StaticKeySource) Key(kid string) (interface{}, error) {
	key, ok := s[kid]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return key, nil
}

// JWKSKeySource serves keys out of a JSON Web Key Set.
type JWKSKeySource struct {
	jwks   *keyfunc.JWKS
	remote bool
}

var _ KeySource = &JWKSKeySource{}

// NewJWKSKeySource fetches the key set at url and refreshes it every refresh interval.
// Unknown kids trigger a rate limited refresh so rotated keys are picked up.
func NewJWKSKeySource(url string, refresh time.Duration) (*JWKSKeySource, error) {
	jwks, err := keyfunc.Get(url, keyfunc.Options{
		RefreshInterval:   refresh,
		RefreshRateLimit:  time.Minute,
		RefreshTimeout:    10 * time.Second,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			log.Warnf("refresh jwks from %s failed: %s", url, err.Error())
		},
	})
	if err != nil {
		return nil, err
	}

	return &JWKSKeySource{jwks: jwks, remote: true}, nil
}

// NewJWKSFromJSON builds a key source from an inline JWKS document.
func NewJWKSFromJSON(raw []byte) (*JWKSKeySource, error) {
	jwks, err := keyfunc.NewJSON(json.RawMessage(raw))
	if err != nil {
		return nil, err
	}

	return &JWKSKeySource{jwks: jwks}, nil
}

// Key implements KeySource.
func (s *JWKSKeySource) Key(kid string) (interface{}, error) {
	probe := &jwt.Token{
		Method: jwt.SigningMethodRS256,
		Header: map[string]interface{}{"kid": kid, "alg": jwt.SigningMethodRS256.Alg()},
	}

	key, err := s.jwks.Keyfunc(probe)
	if err != nil {
		if errors.Is(err, keyfunc.ErrKIDNotFound) {
			return nil, ErrKeyNotFound
		}

		return nil, err
	}

	return key, nil
}

// Close stops the background refresh.
func (s *JWKSKeySource) Close() {
	if !s.remote {
		return
	}

	s.jwks.EndBackground()
}
