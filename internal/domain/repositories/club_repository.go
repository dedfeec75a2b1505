package repositories

import (
	"context"

	"github.com/google/uuid"
	"clubs.backend/internal/domain/entities"
)

// ClubRepository defines club data operations
type ClubRepository interface {
	Create(ctx context.Context, club *entities.Club) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Club, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Club, error)
	ListByLeader(ctx context.Context, leaderInnohassleID string) ([]*entities.Club, error)
	List(ctx context.Context) ([]*entities.Club, error)
	// Update applies a field merge: only fields present in the input
	// overwrite the stored club. Returns ErrNotFound for unknown ids and
	// ErrConflict when the new slug collides with another club.
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateClubInput) (*entities.Club, error)
	// SetLogoFileID replaces the club's logo reference.
	SetLogoFileID(ctx context.Context, id uuid.UUID, logoFileID string) (*entities.Club, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
