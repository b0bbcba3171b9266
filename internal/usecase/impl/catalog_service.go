package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"tienda/config"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	sanitizer    service.Sanitizer
	imagePattern *regexp.Regexp
	logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
// It fails fast when the configured image allow-list pattern is invalid.
func NewCatalogService(
	txManager repository.TransactionManager,
	sanitizer service.Sanitizer,
	cfg *config.Config,
	logger *slog.Logger,
) (usecase.CatalogUsecase, error) {
	pattern, err := regexp.Compile(cfg.Catalog.ImageURLPattern)
	if err != nil {
		return nil, errors.Wrap(err, "invalid catalog image URL pattern")
	}

	return &catalogService{
		txManager:    txManager,
		sanitizer:    sanitizer,
		imagePattern: pattern,
		logger:       logger,
	}, nil
}

// ListProducts returns the full catalog, newest first.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProductRepository().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct fetches a single product by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProductRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})

	if err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct validates and persists a new catalog entry.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(srv.sanitizer.Sanitize(input.Name))
	description := strings.TrimSpace(srv.sanitizer.Sanitize(input.Description))

	if name == "" || description == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Name and description are required")
	}
	if input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Price must be greater than zero")
	}
	if !srv.imagePattern.MatchString(input.ImageURL) {
		return nil, domainerrors.ErrInvalidImageURL
	}

	stock := 0
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domainerrors.ErrValidationFailed.WithMessage("Stock cannot be negative")
		}
		stock = *input.Stock
	}

	product := &entity.Product{
		Name:        name,
		Description: description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Stock:       stock,
		CreatedBy:   input.CreatedBy,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to create product", "name", name, "error", err)

		return nil, err
	}
	srv.logger.Info("Product created", "productID", product.ID, "name", name)

	return product, nil
}

// UpdateProduct applies a partial patch to an existing product.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product update failed")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if input.Name != nil {
			name := strings.TrimSpace(srv.sanitizer.Sanitize(*input.Name))
			if name == "" {
				return domainerrors.ErrValidationFailed.WithMessage("Name cannot be empty")
			}
			found.Name = name
		}
		if input.Description != nil {
			description := strings.TrimSpace(srv.sanitizer.Sanitize(*input.Description))
			if description == "" {
				return domainerrors.ErrValidationFailed.WithMessage("Description cannot be empty")
			}
			found.Description = description
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				return domainerrors.ErrValidationFailed.WithMessage("Price must be greater than zero")
			}
			found.Price = *input.Price
		}
		if input.ImageURL != nil {
			if !srv.imagePattern.MatchString(*input.ImageURL) {
				return domainerrors.ErrInvalidImageURL
			}
			found.ImageURL = *input.ImageURL
		}
		if input.Stock != nil {
			if *input.Stock < 0 {
				return domainerrors.ErrValidationFailed.WithMessage("Stock cannot be negative")
			}
			found.Stock = *input.Stock
		}
		found.UpdatedAt = time.Now()

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})

	if err != nil {
		return nil, err
	}
	srv.logger.Info("Product updated", "productID", id)

	return product, nil
}

// DeleteProduct hard-deletes a product by ID.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product delete failed")
			}

			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})

	if err != nil {
		return err
	}
	srv.logger.Info("Product deleted", "productID", id)

	return nil
}
