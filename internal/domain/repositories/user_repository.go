package repositories

import (
	"context"

	"clubs.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetByInnohassleID(ctx context.Context, innohassleID string) (*entities.User, error)
	// ChangeRole upserts: an unknown innohassle id gets a fresh record with
	// the given role, an existing one has its role overwritten. A store-level
	// uniqueness race between two simultaneous first-time assignments
	// surfaces as ErrConflict.
	ChangeRole(ctx context.Context, innohassleID string, role entities.UserRole) (*entities.User, error)
}
