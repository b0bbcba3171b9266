package impl

import (
	"context"
	"log/slog"
	"strings"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const minCommentLength = 5

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager repository.TransactionManager
	sanitizer service.Sanitizer
	logger    *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	txManager repository.TransactionManager,
	sanitizer service.Sanitizer,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		txManager: txManager,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// ListComments returns a product's comments newest-first with author fields.
func (srv *commentService) ListComments(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error) {
	var comments []*entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewProductRepository().FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("comment listing failed")
			}

			return errors.Wrap(err, "failed to find product")
		}

		found, err := repoFactory.NewCommentRepository().ListByProduct(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to list comments")
		}
		comments = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return comments, nil
}

// CreateComment validates, sanitizes and persists a product comment.
func (srv *commentService) CreateComment(ctx context.Context, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	content := strings.TrimSpace(srv.sanitizer.Sanitize(input.Content))
	if len(content) < minCommentLength {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Comment must be at least 5 characters long")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Rating must be between 1 and 5")
	}

	comment := &entity.Comment{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Content:   content,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewProductRepository().FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("comment creation failed")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if err := repoFactory.NewCommentRepository().Create(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to create comment")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}
	srv.logger.Debug("Comment created", "productID", input.ProductID, "userID", input.UserID)

	return comment, nil
}
