package postgres

import (
	"context"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		ProductID: comment.ProductID,
		UserID:    comment.UserID,
		Rating:    comment.Rating,
		Content:   comment.Content,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("comment references unknown rows")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// commentRow is the join projection of a comment with its author's
// public display fields.
type commentRow struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	UserID         uuid.UUID
	Rating         int
	Content        string
	CreatedAt      time.Time
	AuthorName     string
	AuthorPhotoURL string
}

// ListByProduct retrieves a product's comments joined with author fields, newest first.
func (repo *commentRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error) {
	var rows []commentRow
	if err := repo.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.product_id, comments.user_id, comments.rating, comments.content, comments.created_at, users.full_name AS author_name, users.photo_url AS author_photo_url").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.product_id = ?", productID).
		Order("comments.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, &entity.Comment{
			ID:             row.ID,
			ProductID:      row.ProductID,
			UserID:         row.UserID,
			Rating:         row.Rating,
			Content:        row.Content,
			CreatedAt:      row.CreatedAt,
			AuthorName:     row.AuthorName,
			AuthorPhotoURL: row.AuthorPhotoURL,
		})
	}

	return comments, nil
}
