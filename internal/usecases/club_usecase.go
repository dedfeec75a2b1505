package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/domain/repositories"
	"clubs.backend/pkg/utils"
)

// ClubUsecase handles club catalog business logic
type ClubUsecase struct {
	clubRepo repositories.ClubRepository
	gateway  GatewayClient
}

// NewClubUsecase creates a new club usecase
func NewClubUsecase(clubRepo repositories.ClubRepository, gateway GatewayClient) *ClubUsecase {
	return &ClubUsecase{clubRepo: clubRepo, gateway: gateway}
}

// Create validates and stores a new club
func (u *ClubUsecase) Create(ctx context.Context, input *entities.CreateClubInput) (*entities.Club, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.BadRequest("unknown club type: " + string(input.Type))
	}
	links, err := linksFromInput(input.Links)
	if err != nil {
		return nil, err
	}

	club := &entities.Club{
		ID:                 utils.GenerateUUIDv7(),
		IsActive:           true,
		Slug:               input.Slug,
		Title:              input.Title,
		ShortDescription:   input.ShortDescription,
		Description:        input.Description,
		Type:               input.Type,
		LeaderInnohassleID: null.StringFromPtr(input.LeaderInnohassleID),
		Links:              links,
		SportID:            null.StringFromPtr(input.SportID),
	}
	if input.IsActive != nil {
		club.IsActive = *input.IsActive
	}

	if err := u.clubRepo.Create(ctx, club); err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			return nil, domainerrors.Conflict("slug already exists")
		}
		return nil, err
	}
	return club, nil
}

// GetByID returns the club or ErrNotFound
func (u *ClubUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Club, error) {
	return u.clubRepo.GetByID(ctx, id)
}

// GetBySlug returns the club or ErrNotFound
func (u *ClubUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Club, error) {
	return u.clubRepo.GetBySlug(ctx, slug)
}

// List returns all clubs
func (u *ClubUsecase) List(ctx context.Context) ([]*entities.Club, error) {
	return u.clubRepo.List(ctx)
}

// Update applies a partial update by id. A transient newLeaderEmail is
// resolved through the identity gateway into leaderInnohassleId and
// discarded before the repository call.
func (u *ClubUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateClubInput) (*entities.Club, error) {
	if err := u.prepareUpdate(ctx, input); err != nil {
		return nil, err
	}
	club, err := u.clubRepo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			return nil, domainerrors.Conflict("slug already exists")
		}
		return nil, err
	}
	return club, nil
}

// UpdateBySlug resolves the slug and applies the same partial update
func (u *ClubUsecase) UpdateBySlug(ctx context.Context, slug string, input *entities.UpdateClubInput) (*entities.Club, error) {
	club, err := u.clubRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return u.Update(ctx, club.ID, input)
}

// Delete removes a club by id
func (u *ClubUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.clubRepo.Delete(ctx, id)
}

func (u *ClubUsecase) prepareUpdate(ctx context.Context, input *entities.UpdateClubInput) error {
	if input.Type != nil && !input.Type.Valid() {
		return domainerrors.BadRequest("unknown club type: " + string(*input.Type))
	}
	if input.Links != nil {
		if _, err := linksFromInput(*input.Links); err != nil {
			return err
		}
	}
	if input.NewLeaderEmail != nil {
		info, err := u.gateway.GetUserByEmail(ctx, *input.NewLeaderEmail)
		if err != nil {
			return err
		}
		if info == nil {
			return domainerrors.NotFound("new leader not found in accounts")
		}
		input.LeaderInnohassleID = &info.ID
		input.NewLeaderEmail = nil
	}
	return nil
}

func linksFromInput(inputs []entities.LinkInput) ([]entities.Link, error) {
	links := make([]entities.Link, 0, len(inputs))
	for _, l := range inputs {
		if !l.Type.Valid() {
			return nil, domainerrors.BadRequest("unknown link type: " + string(l.Type))
		}
		links = append(links, entities.Link{
			Type:  l.Type,
			Link:  l.Link,
			Label: null.StringFromPtr(l.Label),
		})
	}
	return links, nil
}
