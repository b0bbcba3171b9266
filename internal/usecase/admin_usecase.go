package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ModerateUserInput identifies the acting admin and the target account.
type ModerateUserInput struct {
	TargetID uuid.UUID
	AdminID  uuid.UUID
	ClientIP string
}

// AdminUsecase defines the interface for account moderation.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.PublicUser, error)

	// ApproveUser activates an account. Re-approving an active account
	// rewrites the same fields.
	ApproveUser(ctx context.Context, input *ModerateUserInput) (*entity.PublicUser, error)

	// BlockUser blocks an account. No target-role check is performed;
	// callers enforce any policy about blocking admins.
	BlockUser(ctx context.Context, input *ModerateUserInput) (*entity.PublicUser, error)

	ListSecurityLogs(ctx context.Context, limit int) ([]*entity.SecurityLog, error)
}
