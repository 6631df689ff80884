// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package auth

import jwt "github.com/golang-jwt/jwt/v4"

// Permission is a capability string such as "post:drinks".
type Permission string

// Permissions used by the drinks api.
const (
	PermGetDrinksDetail Permission = "get:drinks-detail"
	PermPostDrinks      Permission = "post:drinks"
	PermPatchDrinks     Permission = "patch:drinks"
	PermDeleteDrinks    Permission = "delete:drinks"
)

// Claims is the payload of an access token issued by the identity provider.
// A nil Permissions means the claim was absent from the token.
type Claims struct {
	jwt.RegisteredClaims
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether p is granted by the token.
func (c *Claims) HasPermission(p Permission) bool {
	for _, granted := range c.Permissions {
		if granted == string(p) {
			return true
		}
	}

	return false
}
