package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email               string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash        string     `gorm:"type:varchar(255);not null"`
	FullName            string     `gorm:"type:varchar(100);not null"`
	PhotoURL            string     `gorm:"type:text"`
	Role                string     `gorm:"type:varchar(20);not null;default:'customer'"`
	Status              string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	FailedLoginAttempts int        `gorm:"not null;default:0"`
	LastFailedLogin     *time.Time
	ApprovedBy          *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Coupons  []CouponModel  `gorm:"foreignKey:UserID"`
	Orders   []OrderModel   `gorm:"foreignKey:UserID"`
	Comments []CommentModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
