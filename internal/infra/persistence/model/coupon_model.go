package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table.
type CouponModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code               string     `gorm:"type:varchar(50);unique;not null"`
	DiscountPercentage int        `gorm:"not null"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	ExpiresAt          time.Time  `gorm:"not null"`
	Used               bool       `gorm:"not null;default:false"`
	UsedAt             *time.Time
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
