package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines the data required to comment on a product.
type CreateCommentInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Content   string
}

// CommentUsecase defines the interface for product comments.
type CommentUsecase interface {
	ListComments(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error)
	CreateComment(ctx context.Context, input *CreateCommentInput) (*entity.Comment, error)
}
