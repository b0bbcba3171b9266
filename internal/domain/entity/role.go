// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator with catalog and moderation rights.
	RoleAdmin Role = "admin"
	// RoleCustomer indicates a regular storefront customer.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}

// UserStatus represents the moderation state of a user account.
type UserStatus string

const (
	// StatusPending marks a freshly registered account awaiting admin approval.
	StatusPending UserStatus = "pending"
	// StatusActive marks an approved account allowed to log in.
	StatusActive UserStatus = "active"
	// StatusBlocked marks an account that may no longer log in.
	StatusBlocked UserStatus = "blocked"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusBlocked:
		return true
	default:
		return false
	}
}
