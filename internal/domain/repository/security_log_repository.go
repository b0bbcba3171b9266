package repository

import (
	"context"

	"tienda/internal/domain/entity"
)

// SecurityLogRepository persists append-only audit records.
type SecurityLogRepository interface {
	// Create appends a new audit record.
	Create(ctx context.Context, log *entity.SecurityLog) error

	// List retrieves audit records, newest first, capped at limit.
	List(ctx context.Context, limit int) ([]*entity.SecurityLog, error)
}
