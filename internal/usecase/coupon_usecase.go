package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// CouponView pairs a coupon with its derived display status.
type CouponView struct {
	Coupon *entity.Coupon      `json:"coupon"`
	Status entity.CouponStatus `json:"status"`
}

// CouponUsecase defines the interface for coupon reads.
type CouponUsecase interface {
	// ListActiveCoupons returns the user's unused, unexpired coupons.
	ListActiveCoupons(ctx context.Context, userID uuid.UUID) ([]*entity.Coupon, error)

	// ListCouponStatuses returns all of a user's coupons with derived
	// used/expired/valid statuses, without mutating stored state.
	ListCouponStatuses(ctx context.Context, userID uuid.UUID) ([]*CouponView, error)

	// CouponQR renders a PNG QR code for a coupon owned by the user.
	CouponQR(ctx context.Context, userID uuid.UUID, code string) ([]byte, error)
}
