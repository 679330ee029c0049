// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/service"
)

// accessClaims mirrors the hosted auth token layout. "role" is the database role such as
// "authenticated"; application roles live in app_metadata.roles or a top-level "roles" list.
type accessClaims struct {
	Email       string      `json:"email,omitempty"`
	Role        string      `json:"role,omitempty"`
	Roles       []string    `json:"roles,omitempty"`
	AppMetadata appMetadata `json:"app_metadata,omitzero"`
	jwt.RegisteredClaims
}

type appMetadata struct {
	Roles []string `json:"roles,omitempty"`
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Shared secret of the hosted auth provider.
	ttl    time.Duration // Lifetime of locally issued tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwtSecret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in token")
	}

	roles := slices.Clone(claims.Roles)
	for _, role := range append(claims.AppMetadata.Roles, claims.Role) {
		if role != "" && !slices.Contains(roles, role) {
			roles = append(roles, role)
		}
	}

	return &service.Claims{
		UserID:           userID,
		Email:            claims.Email,
		Roles:            roles,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// GenerateToken creates an access token for the user and roles.
func (s *jwtService) GenerateToken(userID uuid.UUID, email string, roles []string) (string, error) {
	now := s.now()
	claims := accessClaims{
		Email: email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
