package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/infrastructure/models"
)

// ClubRepository implements club data operations on GORM
type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// isUniqueViolation reports whether err is a unique-index violation.
// The DB's unique index on slug is the only concurrency-correctness
// mechanism here, so this must never be swallowed into a generic error.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// Create creates a new club
func (r *ClubRepository) Create(ctx context.Context, club *entities.Club) error {
	m := r.toModel(club)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrConflict
		}
		return err
	}
	club.CreatedAt = m.CreatedAt
	club.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a club by ID
func (r *ClubRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Club, error) {
	var m models.Club
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetBySlug gets a club by its unique slug
func (r *ClubRepository) GetBySlug(ctx context.Context, slug string) (*entities.Club, error) {
	var m models.Club
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByLeader lists clubs led by the given innohassle id
func (r *ClubRepository) ListByLeader(ctx context.Context, leaderInnohassleID string) ([]*entities.Club, error) {
	var ms []models.Club
	if err := r.db.WithContext(ctx).
		Where("leader_innohassle_id = ?", leaderInnohassleID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// List lists all clubs
func (r *ClubRepository) List(ctx context.Context) ([]*entities.Club, error) {
	var ms []models.Club
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// Update applies a field merge: only fields present in the input overwrite
// the stored club. Unknown id yields ErrNotFound, a slug collision with
// another club yields ErrConflict.
func (r *ClubRepository) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateClubInput) (*entities.Club, error) {
	updates := map[string]interface{}{}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.Slug != nil {
		updates["slug"] = *input.Slug
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.ShortDescription != nil {
		updates["short_description"] = *input.ShortDescription
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Type != nil {
		updates["type"] = string(*input.Type)
	}
	if input.LeaderInnohassleID != nil {
		updates["leader_innohassle_id"] = *input.LeaderInnohassleID
	}
	if input.Links != nil {
		links := make(models.LinkList, 0, len(*input.Links))
		for _, l := range *input.Links {
			links = append(links, entities.Link{
				Type:  l.Type,
				Link:  l.Link,
				Label: null.StringFromPtr(l.Label),
			})
		}
		updates["links"] = links
	}
	if input.SportID != nil {
		updates["sport_id"] = *input.SportID
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		result := r.db.WithContext(ctx).
			Model(&models.Club{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			if isUniqueViolation(result.Error) {
				return nil, domainerrors.ErrConflict
			}
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, domainerrors.ErrNotFound
		}
	}

	return r.GetByID(ctx, id)
}

// SetLogoFileID replaces the club's logo reference, discarding the old one.
func (r *ClubRepository) SetLogoFileID(ctx context.Context, id uuid.UUID, logoFileID string) (*entities.Club, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Club{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"logo_file_id": logoFileID,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a club. Unknown ids yield ErrNotFound, never a fault.
func (r *ClubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Club{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ClubRepository) toEntities(ms []models.Club) []*entities.Club {
	items := make([]*entities.Club, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *ClubRepository) toEntity(m *models.Club) *entities.Club {
	links := make([]entities.Link, len(m.Links))
	copy(links, m.Links)
	return &entities.Club{
		ID:                 m.ID,
		IsActive:           m.IsActive,
		Slug:               m.Slug,
		Title:              m.Title,
		ShortDescription:   m.ShortDescription,
		Description:        m.Description,
		LogoFileID:         null.StringFromPtr(m.LogoFileID),
		Type:               entities.ClubType(m.Type),
		LeaderInnohassleID: null.StringFromPtr(m.LeaderInnohassleID),
		Links:              links,
		SportID:            null.StringFromPtr(m.SportID),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func (r *ClubRepository) toModel(e *entities.Club) *models.Club {
	return &models.Club{
		ID:                 e.ID,
		IsActive:           e.IsActive,
		Slug:               e.Slug,
		Title:              e.Title,
		ShortDescription:   e.ShortDescription,
		Description:        e.Description,
		LogoFileID:         e.LogoFileID.Ptr(),
		Type:               string(e.Type),
		LeaderInnohassleID: e.LeaderInnohassleID.Ptr(),
		Links:              models.LinkList(e.Links),
		SportID:            e.SportID.Ptr(),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
