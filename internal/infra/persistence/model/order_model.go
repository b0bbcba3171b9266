package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Amount columns are integer minor
// currency units; final_amount = total_amount - discount_amount.
type OrderModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	TotalAmount    int64      `gorm:"not null"`
	DiscountAmount int64      `gorm:"not null;default:0"`
	FinalAmount    int64      `gorm:"not null"`
	CouponID       *uuid.UUID `gorm:"type:uuid"`
	PaymentMethod  string     `gorm:"type:varchar(20);not null"`
	PaymentStatus  string     `gorm:"type:varchar(20);not null"`
	CreatedAt      time.Time  `gorm:"index"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. PriceAtPurchase is the
// product price snapshotted at checkout time.
type OrderItemModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null"`
	Quantity        int       `gorm:"not null"`
	PriceAtPurchase int64     `gorm:"not null"`
	Subtotal        int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
