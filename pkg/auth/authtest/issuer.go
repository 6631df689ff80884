// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package authtest issues signed tokens for tests of code guarded by auth.Verifier.
package authtest

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"math/big"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"

	"github.com/marmotedu/coffeeshop/pkg/auth"
)

// Defaults used by NewIssuer.
const (
	DefaultKeyID    = "test-key"
	DefaultAudience = "drinks"
	DefaultIssuer   = "https://coffeeshop.test/"
)

// Issuer signs RS256 tokens with a freshly generated key.
type Issuer struct {
	KeyID    string
	Audience string
	Issuer   string
	key      *rsa.PrivateKey
}

// NewIssuer generates a 2048 bit key. It panics if the system entropy source fails.
func NewIssuer() *Issuer {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}

	return &Issuer{KeyID: DefaultKeyID, Audience: DefaultAudience, Issuer: DefaultIssuer, key: key}
}

// Keys returns a key source that knows the issuer's public key.
func (i *Issuer) Keys() auth.StaticKeySource {
	return auth.NewStaticKeySource(map[string]interface{}{i.KeyID: &i.key.PublicKey})
}

// Verifier returns a verifier that trusts the issuer.
func (i *Issuer) Verifier() *auth.Verifier {
	return auth.NewVerifier(i.Keys(), i.Audience, i.Issuer)
}

// JWKS renders the public key as a JSON Web Key Set document.
func (i *Issuer) JWKS() []byte {
	pub := i.key.PublicKey
	n := base64.RawURLEncoding.EncodeToString(pub.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes())

	return []byte(fmt.Sprintf(`{"keys":[{"kty":"RSA","use":"sig","alg":"RS256","kid":%q,"n":%q,"e":%q}]}`,
		i.KeyID, n, e))
}

// Claims returns valid claims for subject granting permissions.
func (i *Issuer) Claims(subject string, permissions ...string) *auth.Claims {
	now := time.Now()
	if permissions == nil {
		permissions = []string{}
	}

	return &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.Issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{i.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Permissions: permissions,
	}
}

// Sign signs claims under the issuer's key id.
func (i *Issuer) Sign(claims jwt.Claims) string {
	return i.SignWithKID(claims, i.KeyID)
}

// SignWithKID signs claims and stamps kid into the header. An empty kid leaves the header without one.
func (i *Issuer) SignWithKID(claims jwt.Claims, kid string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}

	signed, err := token.SignedString(i.key)
	if err != nil {
		panic(err)
	}

	return signed
}

// Bearer returns an Authorization header value for a token granting permissions.
func (i *Issuer) Bearer(permissions ...string) string {
	return "Bearer " + i.Sign(i.Claims("auth0|barista", permissions...))
}
