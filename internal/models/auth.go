package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims represents the bearer token payload issued by the identity
// provider. Only the user id is relied upon; the rest is informational.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
