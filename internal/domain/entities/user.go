package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the local authorization level of a user,
// independent of the identity gateway's own notion of identity.
type UserRole string

const (
	UserRoleDefault UserRole = "default"
	UserRoleAdmin   UserRole = "admin"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == UserRoleDefault || r == UserRoleAdmin
}

// User represents a locally known user. Users are created lazily: the
// first role assignment for an unknown innohassle id creates the record.
type User struct {
	ID           uuid.UUID `json:"id"`
	InnohassleID string    `json:"innohassleId"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserWithClubs is the "me" view: the user's role plus the clubs they lead.
// For identities with no local record the role defaults to UserRoleDefault
// without persisting anything.
type UserWithClubs struct {
	InnohassleID  string   `json:"innohassleId"`
	Role          UserRole `json:"role"`
	LeaderInClubs []*Club  `json:"leaderInClubs"`
}

// ChangeRoleInput represents input for the change-role operation
type ChangeRoleInput struct {
	Email string   `json:"email" binding:"required,email"`
	Role  UserRole `json:"role" binding:"required"`
}
