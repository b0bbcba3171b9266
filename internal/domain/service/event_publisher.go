package service

import (
	"context"
)

// OrderCreatedEvent is published after a checkout commits, for downstream
// consumers such as fulfillment or notification workers.
type OrderCreatedEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string `json:"order_id"`
	UserID      string `json:"user_id"`
	FinalAmount int64  `json:"final_amount"`
	ItemCount   int    `json:"item_count"`
	CouponCode  string `json:"coupon_code,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCreated publishes an order-created event for async processing
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
