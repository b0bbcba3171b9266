package entity

import (
	"time"

	"github.com/google/uuid"
)

// SecurityEventType enumerates audited account and order events.
type SecurityEventType string

const (
	EventFailedLoginAttempt SecurityEventType = "failed_login_attempt"
	EventSuccessfulLogin    SecurityEventType = "successful_login"
	EventUserRegistration   SecurityEventType = "user_registration"
	EventUserApproved       SecurityEventType = "user_approved"
	EventUserBlocked        SecurityEventType = "user_blocked"
	EventOrderCreated       SecurityEventType = "order_created"
)

// SecurityLog is one append-only audit record. UserID is nil when the
// event has no resolvable account, such as a failed login for an
// unknown email.
type SecurityLog struct {
	ID        uuid.UUID         `json:"id"`
	UserID    *uuid.UUID        `json:"user_id,omitempty"`
	EventType SecurityEventType `json:"event_type"`
	IPAddress string            `json:"ip_address,omitempty"`
	Details   map[string]any    `json:"details,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
