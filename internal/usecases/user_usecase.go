package usecases

import (
	"context"
	"errors"

	"clubs.backend/internal/config"
	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/domain/repositories"
)

// UserUsecase handles local user views and role management
type UserUsecase struct {
	userRepo repositories.UserRepository
	clubRepo repositories.ClubRepository
	gateway  GatewayClient
	accounts config.AccountsConfig
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	clubRepo repositories.ClubRepository,
	gateway GatewayClient,
	accounts config.AccountsConfig,
) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		clubRepo: clubRepo,
		gateway:  gateway,
		accounts: accounts,
	}
}

// GetMe returns the caller's role and led clubs. An identity with no local
// record gets a transient default-role view; nothing is persisted.
func (u *UserUsecase) GetMe(ctx context.Context, innohassleID string) (*entities.UserWithClubs, error) {
	role := entities.UserRoleDefault
	user, err := u.userRepo.GetByInnohassleID(ctx, innohassleID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if user != nil {
		role = user.Role
	}

	clubs, err := u.clubRepo.ListByLeader(ctx, innohassleID)
	if err != nil {
		return nil, err
	}

	return &entities.UserWithClubs{
		InnohassleID:  innohassleID,
		Role:          role,
		LeaderInClubs: clubs,
	}, nil
}

// ChangeRole assigns a role to the user with the given email. Only emails
// on the superadmin allow-list may call this; the target must be known to
// the identity gateway but need not have a local record yet.
func (u *UserUsecase) ChangeRole(ctx context.Context, requesterEmail string, input *entities.ChangeRoleInput) (*entities.User, error) {
	if !u.accounts.IsSuperadmin(requesterEmail) {
		return nil, domainerrors.Forbidden("only superadmin can change role")
	}
	if !input.Role.Valid() {
		return nil, domainerrors.BadRequest("unknown role: " + string(input.Role))
	}

	target, err := u.gateway.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domainerrors.NotFound("user to change not found")
	}

	user, err := u.userRepo.ChangeRole(ctx, target.ID, input.Role)
	if err != nil {
		if errors.Is(err, domainerrors.ErrConflict) {
			// Two concurrent first-time assignments for the same identity
			// raced on the unique index; surface it, don't drop it.
			return nil, domainerrors.Conflict("user already exists")
		}
		return nil, err
	}
	return user, nil
}
