package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the lifecycle state of an order's payment.
// The simulated gateway settles immediately, so orders are created completed.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Order is a completed checkout: the priced header plus its line items.
// All monetary amounts are integer minor units.
type Order struct {
	ID             uuid.UUID     `json:"id"`
	UserID         uuid.UUID     `json:"user_id"`
	TotalAmount    int64         `json:"total_amount"`
	DiscountAmount int64         `json:"discount_amount"`
	FinalAmount    int64         `json:"final_amount"`
	CouponID       *uuid.UUID    `json:"coupon_id,omitempty"`
	PaymentMethod  string        `json:"payment_method"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	CreatedAt      time.Time     `json:"created_at"`
	Items          []*OrderItem  `json:"items,omitempty"`
}

// OrderItem is one purchased line with the price frozen at purchase time.
type OrderItem struct {
	ID              uuid.UUID `json:"id"`
	OrderID         uuid.UUID `json:"order_id"`
	ProductID       uuid.UUID `json:"product_id"`
	Quantity        int       `json:"quantity"`
	PriceAtPurchase int64     `json:"price_at_purchase"`
	Subtotal        int64     `json:"subtotal"`
}
