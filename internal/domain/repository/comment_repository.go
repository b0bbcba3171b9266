package repository

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment lookup matches nothing.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByProduct retrieves a product's comments with author name and
	// photo joined in, newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error)
}
