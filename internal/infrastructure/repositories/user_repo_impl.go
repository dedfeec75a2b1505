package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/infrastructure/models"
	"clubs.backend/pkg/utils"
)

// UserRepository implements user data operations on GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByInnohassleID gets a user by the gateway identity id
func (r *UserRepository) GetByInnohassleID(ctx context.Context, innohassleID string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("innohassle_id = ?", innohassleID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ChangeRole upserts: creates the user on first role assignment, otherwise
// overwrites the role. Two racing first-time assignments can still trip the
// unique index on innohassle_id; that surfaces as ErrConflict.
func (r *UserRepository) ChangeRole(ctx context.Context, innohassleID string, role entities.UserRole) (*entities.User, error) {
	existing, err := r.GetByInnohassleID(ctx, innohassleID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	if existing == nil {
		m := &models.User{
			ID:           utils.GenerateUUIDv7(),
			InnohassleID: innohassleID,
			Role:         string(role),
		}
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			if isUniqueViolation(err) {
				return nil, domainerrors.ErrConflict
			}
			return nil, err
		}
		return r.toEntity(m), nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("innohassle_id = ?", innohassleID).
		Updates(map[string]interface{}{
			"role":       string(role),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	return r.GetByInnohassleID(ctx, innohassleID)
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		InnohassleID: m.InnohassleID,
		Role:         entities.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
