package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the access token claims the service relies on.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the hosted auth provider.
type TokenService interface {
	// ValidateToken checks the signature and expiry of an access token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateToken signs an access token with the shared secret, for operators and local development.
	GenerateToken(userID uuid.UUID, email string, roles []string) (string, error)
}
