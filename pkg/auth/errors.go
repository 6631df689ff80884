// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package auth

import (
	"fmt"
	"net/http"
)

// Codes carried by AuthError.
const (
	CodeInvalidHeader = "invalid_header"
	CodeInvalidClaims = "invalid_claims"
	CodeTokenExpired  = "token_expired"
	CodeUnauthorized  = "unauthorized"
)

// AuthError is an authorization failure with the http status it should be reported with.
type AuthError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	StatusCode  int    `json:"-"`
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func newAuthError(code string, status int, description string) *AuthError {
	return &AuthError{Code: code, Description: description, StatusCode: status}
}

var (
	errMissingHeader   = newAuthError(CodeInvalidHeader, http.StatusUnauthorized, "Authorization header is expected.")
	errNotBearer       = newAuthError(CodeInvalidHeader, http.StatusUnauthorized, `Authorization header must start with "Bearer".`)
	errMissingToken    = newAuthError(CodeInvalidHeader, http.StatusUnauthorized, "Token not found.")
	errNotBearerToken  = newAuthError(CodeInvalidHeader, http.StatusUnauthorized, "Authorization header must be bearer token.")
	errMalformed       = newAuthError(CodeInvalidHeader, http.StatusUnauthorized, "Authorization malformed.")
	errKeyNotMatched   = newAuthError(CodeInvalidHeader, http.StatusBadRequest, "Unable to find the appropriate key.")
	errUnparsable      = newAuthError(CodeInvalidHeader, http.StatusBadRequest, "Unable to parse authentication token.")
	errExpired         = newAuthError(CodeTokenExpired, http.StatusUnauthorized, "Token expired.")
	errIncorrectClaims = newAuthError(CodeInvalidClaims, http.StatusUnauthorized,
		"Incorrect claims. Please, check the audience and issuer.")
	errNoPermissions      = newAuthError(CodeInvalidClaims, http.StatusBadRequest, "Permissions not included in JWT.")
	errPermissionNotFound = newAuthError(CodeUnauthorized, http.StatusForbidden, "Permission not found.")
)
