// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package auth verifies bearer tokens issued by an Auth0 style identity provider
// and checks the permissions they grant.
package auth

import (
	"errors"
	"strings"

	jwt "github.com/golang-jwt/jwt/v4"
)

// Authorizer checks that an Authorization header carries a valid token granting permission.
type Authorizer interface {
	Verify(header string, permission Permission) (*Claims, error)
}

// Verifier validates RS256 access tokens against the keys of a KeySource.
type Verifier struct {
	keys     KeySource
	audience string
	issuer   string
	parser   *jwt.Parser
}

var _ Authorizer = &Verifier{}

// NewVerifier creates a verifier accepting tokens for audience issued by issuer.
func NewVerifier(keys KeySource, audience, issuer string) *Verifier {
	return &Verifier{
		keys:     keys,
		audience: audience,
		issuer:   issuer,
		parser:   jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})),
	}
}

// Verify runs the checks in order and stops at the first failure, which is always an *AuthError.
func (v *Verifier) Verify(header string, permission Permission) (*Claims, error) {
	raw, err := tokenFromHeader(header)
	if err != nil {
		return nil, err
	}

	claims, err := v.decode(raw)
	if err != nil {
		return nil, err
	}

	if claims.Permissions == nil {
		return nil, errNoPermissions
	}

	if !claims.HasPermission(permission) {
		return nil, errPermissionNotFound
	}

	return claims, nil
}

func tokenFromHeader(header string) (string, error) {
	if header == "" {
		return "", errMissingHeader
	}

	parts := strings.Fields(header)
	switch {
	case len(parts) == 0 || !strings.EqualFold(parts[0], "bearer"):
		return "", errNotBearer
	case len(parts) == 1:
		return "", errMissingToken
	case len(parts) > 2:
		return "", errNotBearerToken
	}

	return parts[1], nil
}

func (v *Verifier) decode(raw string) (*Claims, error) {
	unverified, _, err := v.parser.ParseUnverified(raw, &Claims{})
	if err != nil {
		return nil, errUnparsable
	}

	kid, _ := unverified.Header["kid"].(string)
	if kid == "" {
		return nil, errMalformed
	}

	key, err := v.keys.Key(kid)
	if err != nil {
		return nil, errKeyNotMatched
	}

	claims := &Claims{}
	_, err = v.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if !claims.VerifyAudience(v.audience, true) || !claims.VerifyIssuer(v.issuer, true) {
		return nil, errIncorrectClaims
	}

	return claims, nil
}

// classify maps a parse failure to the error reported to the client.
// Signature problems take precedence over claim problems.
func classify(err error) *AuthError {
	var vErr *jwt.ValidationError
	if !errors.As(err, &vErr) {
		return errUnparsable
	}

	switch {
	case vErr.Errors&(jwt.ValidationErrorMalformed|jwt.ValidationErrorUnverifiable|jwt.ValidationErrorSignatureInvalid) != 0:
		return errUnparsable
	case vErr.Errors&jwt.ValidationErrorExpired != 0:
		return errExpired
	case vErr.Errors&(jwt.ValidationErrorNotValidYet|jwt.ValidationErrorIssuedAt) != 0:
		return errIncorrectClaims
	default:
		return errUnparsable
	}
}
