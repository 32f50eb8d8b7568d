package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload shared by token issuance and the auth middleware.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
