// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	PhotoURL string
	ClientIP string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	ClientIP string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account and its welcome coupon.
type RegisterOutput struct {
	User   *entity.PublicUser
	Coupon *entity.Coupon
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.PublicUser
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser resolves the live user row for a verified token subject.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error)
}
