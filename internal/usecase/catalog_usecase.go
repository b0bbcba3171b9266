package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       int64
	ImageURL    string
	Stock       *int
	CreatedBy   uuid.UUID
}

// UpdateProductInput defines a partial patch; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *int64
	ImageURL    *string
	Stock       *int
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
