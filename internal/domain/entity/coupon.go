package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is a single-use percentage discount owned by one user.
// A coupon is consumable only by its owner, only once, and only before expiry.
type Coupon struct {
	ID                 uuid.UUID  `json:"id"`
	Code               string     `json:"code"`
	DiscountPercentage int        `json:"discount_percentage"`
	UserID             uuid.UUID  `json:"user_id"`
	ExpiresAt          time.Time  `json:"expires_at"`
	Used               bool       `json:"used"`
	UsedAt             *time.Time `json:"used_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// CouponStatus is the display state derived from a coupon without mutating it.
type CouponStatus string

const (
	CouponStatusValid   CouponStatus = "valid"
	CouponStatusUsed    CouponStatus = "used"
	CouponStatusExpired CouponStatus = "expired"
)

// StatusAt derives the display status of the coupon relative to now.
func (c *Coupon) StatusAt(now time.Time) CouponStatus {
	switch {
	case c.Used || c.UsedAt != nil:
		return CouponStatusUsed
	case c.ExpiresAt.Before(now):
		return CouponStatusExpired
	default:
		return CouponStatusValid
	}
}

// Redeemable reports whether the coupon can still discount an order at now.
func (c *Coupon) Redeemable(now time.Time) bool {
	return c.StatusAt(now) == CouponStatusValid
}
