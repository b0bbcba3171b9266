// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account record of the storefront.
// PasswordHash never crosses the delivery boundary; handlers map users
// through PublicView before serialization.
type User struct {
	ID                  uuid.UUID  // The unique identifier for the user.
	Email               string     // Lower-cased login identifier, unique across the system.
	PasswordHash        string     // bcrypt hash of the user's password.
	FullName            string     // Display name, sanitized at registration.
	PhotoURL            string     // Optional profile photo reference.
	Role                Role       // Either admin or customer.
	Status              UserStatus // pending until an admin approves, then active; blocked disables login.
	FailedLoginAttempts int        // Consecutive failed login count, reset on success or elapsed lockout.
	LastFailedLogin     *time.Time // Timestamp of the most recent failed login, nil when counter is zero.
	ApprovedBy          *uuid.UUID // Admin who approved the account, nil while pending.
	ApprovedAt          *time.Time // When the account was approved.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PublicUser is the externally visible projection of a User.
type PublicUser struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// PublicView strips credential material from the user record.
func (u *User) PublicView() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
