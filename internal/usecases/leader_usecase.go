package usecases

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"clubs.backend/internal/domain/entities"
	"clubs.backend/internal/domain/repositories"
	"clubs.backend/internal/infrastructure/accounts"
	"clubs.backend/pkg/logger"
)

// LeaderUsecase builds display-ready leader profiles by joining club
// leader ids against the identity gateway.
type LeaderUsecase struct {
	clubRepo repositories.ClubRepository
	gateway  GatewayClient
}

// NewLeaderUsecase creates a new leader usecase
func NewLeaderUsecase(clubRepo repositories.ClubRepository, gateway GatewayClient) *LeaderUsecase {
	return &LeaderUsecase{clubRepo: clubRepo, gateway: gateway}
}

func leaderFromUser(info *accounts.UserInfo) *entities.Leader {
	leader := &entities.Leader{InnohassleID: info.ID}
	if info.InnopolisSSO != nil {
		leader.Name = null.StringFrom(info.InnopolisSSO.Name)
		leader.Email = null.StringFrom(info.InnopolisSSO.Email)
	}
	if info.Telegram != nil {
		leader.TelegramAlias = null.StringFrom(info.Telegram.Username)
	}
	return leader
}

// GetByInnohassleID resolves one leader profile. Unknown gateway users
// yield (nil, nil).
func (u *LeaderUsecase) GetByInnohassleID(ctx context.Context, innohassleID string) (*entities.Leader, error) {
	info, err := u.gateway.GetUserByID(ctx, innohassleID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}
	return leaderFromUser(info), nil
}

// GetManyByInnohassleIDs resolves leaders for each id with one concurrent
// gateway lookup per id. The result has the same length and order as the
// input; any failed or missing lookup degrades to nil at its position and
// never aborts the others.
func (u *LeaderUsecase) GetManyByInnohassleIDs(ctx context.Context, innohassleIDs []string) []*entities.Leader {
	leaders := make([]*entities.Leader, len(innohassleIDs))

	var wg sync.WaitGroup
	for i, id := range innohassleIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			leader, err := u.GetByInnohassleID(ctx, id)
			if err != nil {
				logger.Warn(ctx, "leader lookup failed",
					zap.String("innohassle_id", id), zap.Error(err))
				return
			}
			leaders[i] = leader
		}(i, id)
	}
	wg.Wait()

	return leaders
}

// GetAll collects leader ids from all clubs, resolves them in one batch
// and drops leaders the gateway does not know.
func (u *LeaderUsecase) GetAll(ctx context.Context) ([]*entities.Leader, error) {
	clubs, err := u.clubRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	ids := make([]string, 0, len(clubs))
	for _, club := range clubs {
		id := club.LeaderInnohassleID.String
		if !club.LeaderInnohassleID.Valid || id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	resolved := u.GetManyByInnohassleIDs(ctx, ids)
	leaders := make([]*entities.Leader, 0, len(resolved))
	for _, l := range resolved {
		if l != nil {
			leaders = append(leaders, l)
		}
	}
	return leaders, nil
}

// GetByClubID resolves the leader of the club with the given id.
// Clubs without a designated leader yield (nil, nil).
func (u *LeaderUsecase) GetByClubID(ctx context.Context, clubID uuid.UUID) (*entities.Leader, error) {
	club, err := u.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	return u.leaderOfClub(ctx, club)
}

// GetByClubSlug resolves the leader of the club with the given slug.
func (u *LeaderUsecase) GetByClubSlug(ctx context.Context, slug string) (*entities.Leader, error) {
	club, err := u.clubRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return u.leaderOfClub(ctx, club)
}

func (u *LeaderUsecase) leaderOfClub(ctx context.Context, club *entities.Club) (*entities.Leader, error) {
	if !club.LeaderInnohassleID.Valid || club.LeaderInnohassleID.String == "" {
		return nil, nil
	}
	return u.GetByInnohassleID(ctx, club.LeaderInnohassleID.String)
}
