package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SecurityLogModel mirrors the append-only 'security_logs' table.
// Details carries the free-form event payload as JSONB.
type SecurityLogModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    *uuid.UUID        `gorm:"type:uuid;index"`
	EventType string            `gorm:"type:varchar(50);not null;index"`
	IPAddress string            `gorm:"type:varchar(45)"`
	Details   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SecurityLogModel) TableName() string {
	return "security_logs"
}
