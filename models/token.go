package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// PermissionDeploy allows uploading artifacts for future deployments.
const PermissionDeploy = "deploy"

// TokenClaims is the JWT claim set issued to API callers.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Permissions lists the capabilities granted to the token holder.
	Permissions []string `json:"permissions,omitempty"`
}

// Token is a parsed or freshly signed access token.
type Token struct {
	// Token is the underlying JWT. Never serialized.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Subject identifies the caller (the "sub" claim).
	Subject string `json:"-"`

	// Permissions is a copy of the "permissions" claim.
	Permissions []string `json:"-"`
}

// HasPermission reports whether the token grants permission.
func (t Token) HasPermission(permission string) bool {
	return slices.Contains(t.Permissions, permission)
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
