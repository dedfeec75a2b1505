package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/pkg/utils"
)

func TestLeaderUsecase_GetByInnohassleID(t *testing.T) {
	gateway := newFakeGateway()
	gateway.addUser(gatewayUser("id-1", "Alice", "alice@innopolis.university", "alice_tg"))
	uc := NewLeaderUsecase(newMemClubRepo(), gateway)

	leader, err := uc.GetByInnohassleID(context.Background(), "id-1")
	require.NoError(t, err)
	require.NotNil(t, leader)
	assert.Equal(t, "id-1", leader.InnohassleID)
	assert.Equal(t, "Alice", leader.Name.String)
	assert.Equal(t, "alice@innopolis.university", leader.Email.String)
	assert.Equal(t, "alice_tg", leader.TelegramAlias.String)

	// unknown identity is absence, not an error
	leader, err = uc.GetByInnohassleID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, leader)
}

func TestLeaderUsecase_GetMany_FailureIsolation(t *testing.T) {
	gateway := newFakeGateway()
	gateway.addUser(gatewayUser("id-a", "Alice", "alice@innopolis.university", ""))
	gateway.addUser(gatewayUser("id-c", "Carol", "carol@innopolis.university", ""))
	gateway.failFor("id-b", errors.New("gateway timeout"))
	uc := NewLeaderUsecase(newMemClubRepo(), gateway)

	// one failing and one unknown id degrade to nil at their positions,
	// the rest still resolve, and order is preserved
	leaders := uc.GetManyByInnohassleIDs(context.Background(), []string{"id-a", "id-b", "unknown", "id-c"})
	require.Len(t, leaders, 4)
	require.NotNil(t, leaders[0])
	assert.Equal(t, "id-a", leaders[0].InnohassleID)
	assert.Nil(t, leaders[1])
	assert.Nil(t, leaders[2])
	require.NotNil(t, leaders[3])
	assert.Equal(t, "id-c", leaders[3].InnohassleID)
}

func TestLeaderUsecase_GetAll(t *testing.T) {
	gateway := newFakeGateway()
	gateway.addUser(gatewayUser("id-a", "Alice", "alice@innopolis.university", ""))
	repo := newMemClubRepo()
	uc := NewLeaderUsecase(repo, gateway)
	ctx := context.Background()

	addClub := func(slug, leaderID string) {
		club := &entities.Club{ID: utils.GenerateUUIDv7(), Slug: slug, Title: slug, Type: entities.ClubTypeTech}
		if leaderID != "" {
			club.LeaderInnohassleID = null.StringFrom(leaderID)
		}
		require.NoError(t, repo.Create(ctx, club))
	}
	addClub("one", "id-a")
	addClub("two", "id-a") // duplicate leader is resolved once
	addClub("three", "")
	addClub("four", "unknown") // gateway does not know this one

	leaders, err := uc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, leaders, 1)
	assert.Equal(t, "id-a", leaders[0].InnohassleID)
}

func TestLeaderUsecase_GetByClub(t *testing.T) {
	gateway := newFakeGateway()
	gateway.addUser(gatewayUser("id-a", "Alice", "alice@innopolis.university", ""))
	repo := newMemClubRepo()
	uc := NewLeaderUsecase(repo, gateway)
	ctx := context.Background()

	led := &entities.Club{
		ID: utils.GenerateUUIDv7(), Slug: "led", Title: "Led", Type: entities.ClubTypeArt,
		LeaderInnohassleID: null.StringFrom("id-a"),
	}
	leaderless := &entities.Club{ID: utils.GenerateUUIDv7(), Slug: "solo", Title: "Solo", Type: entities.ClubTypeArt}
	require.NoError(t, repo.Create(ctx, led))
	require.NoError(t, repo.Create(ctx, leaderless))

	leader, err := uc.GetByClubID(ctx, led.ID)
	require.NoError(t, err)
	require.NotNil(t, leader)
	assert.Equal(t, "id-a", leader.InnohassleID)

	leader, err = uc.GetByClubSlug(ctx, "solo")
	require.NoError(t, err)
	assert.Nil(t, leader)

	_, err = uc.GetByClubSlug(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
