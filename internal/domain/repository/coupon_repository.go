package repository

import (
	"context"
	"errors"
	"time"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCouponNotFound is returned when a coupon lookup matches nothing.
var ErrCouponNotFound = errors.New("coupon not found")

// ErrCouponAlreadyUsed is returned when consuming a coupon that was already
// consumed by a concurrent request.
var ErrCouponAlreadyUsed = errors.New("coupon already used")

// CouponRepository defines the standard operations for coupon persistence.
type CouponRepository interface {
	// Create persists a new coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// FindByCode retrieves a coupon by its code.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// ListByUser retrieves all coupons owned by a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Coupon, error)

	// Consume marks an unused coupon as used at the given time.
	// The update is conditional on the coupon being unused, so a coupon
	// can be consumed at most once even under concurrent checkouts.
	Consume(ctx context.Context, id uuid.UUID, usedAt time.Time) error
}
