package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tienda/internal/domain/entity"
)

// Claims defines the custom claims for the session JWT.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed session token for a given user.
	Generate(userID uuid.UUID, email string, role entity.Role) (string, error)

	// Validate checks the validity of a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)

	// TokenTTL returns the configured session token lifetime.
	TokenTTL() time.Duration
}
