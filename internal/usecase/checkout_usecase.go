package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// CartItemInput is one requested line of a checkout.
type CartItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutInput carries the cart, optional coupon and payment-shape fields.
// Card data is validated for shape only and never persisted.
type CheckoutInput struct {
	UserID     uuid.UUID
	Items      []CartItemInput
	CouponCode string
	CardNumber string
	CVV        string
	Expiry     string
	ClientIP   string
	RequestID  string
}

// CheckoutOutput returns the persisted order.
type CheckoutOutput struct {
	Order *entity.Order
}

// CheckoutUsecase defines the interface for checkout and order history.
type CheckoutUsecase interface {
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
