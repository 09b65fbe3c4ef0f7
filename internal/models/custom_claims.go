package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by access tokens from the identity provider
type CustomClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
