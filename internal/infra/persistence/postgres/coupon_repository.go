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

// couponRepository implements the domain.CouponRepository interface using GORM.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// Create persists a new coupon.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("coupon code already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt

	return nil
}

// FindByCode retrieves a coupon by its code.
func (repo *couponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel
	if err := repo.db.WithContext(ctx).First(&couponM, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// ListByUser retrieves all coupons owned by a user, newest first.
func (repo *couponRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Coupon, error) {
	var models []model.CouponModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(models))
	for i := range models {
		coupons = append(coupons, toCouponDomain(&models[i]))
	}

	return coupons, nil
}

// Consume marks an unused coupon as used. The conditional update keeps the
// coupon single-use even when two checkouts race on the same code.
func (repo *couponRepository) Consume(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ? AND used = false", id).
		Updates(map[string]any{"used": true, "used_at": usedAt})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to consume coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponAlreadyUsed
	}

	return nil
}

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:                 data.ID,
		Code:               data.Code,
		DiscountPercentage: data.DiscountPercentage,
		UserID:             data.UserID,
		ExpiresAt:          data.ExpiresAt,
		Used:               data.Used,
		UsedAt:             data.UsedAt,
		CreatedAt:          data.CreatedAt,
	}
}

// fromCouponDomain converts a domain Coupon entity to a GORM CouponModel.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	return &model.CouponModel{
		ID:                 data.ID,
		Code:               data.Code,
		DiscountPercentage: data.DiscountPercentage,
		UserID:             data.UserID,
		ExpiresAt:          data.ExpiresAt,
		Used:               data.Used,
		UsedAt:             data.UsedAt,
	}
}
