package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/pkg/utils"
)

func newClub(slug string) *entities.Club {
	return &entities.Club{
		ID:               utils.GenerateUUIDv7(),
		IsActive:         true,
		Slug:             slug,
		Title:            "Robotics Club",
		ShortDescription: "robots",
		Description:      "we build robots",
		Type:             entities.ClubTypeTech,
		Links: []entities.Link{
			{Type: entities.LinkTypeTelegramChannel, Link: "https://t.me/robots", Label: null.StringFrom("news")},
			{Type: entities.LinkTypeExternalURL, Link: "https://robots.example.org"},
		},
	}
}

func TestClubRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createClubTable(t, db)
	repo := NewClubRepository(db)
	ctx := context.Background()

	club := newClub("robotics")
	require.NoError(t, repo.Create(ctx, club))

	byID, err := repo.GetByID(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, club.ID, byID.ID)
	assert.Equal(t, "robotics", byID.Slug)
	assert.Equal(t, entities.ClubTypeTech, byID.Type)
	require.Len(t, byID.Links, 2)
	assert.Equal(t, entities.LinkTypeTelegramChannel, byID.Links[0].Type)
	assert.Equal(t, "news", byID.Links[0].Label.String)
	assert.False(t, byID.Links[1].Label.Valid)

	bySlug, err := repo.GetBySlug(ctx, "robotics")
	require.NoError(t, err)
	assert.Equal(t, club.ID, bySlug.ID)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetBySlug(ctx, "nope")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClubRepository_SlugConflict(t *testing.T) {
	db := newTestDB(t)
	createClubTable(t, db)
	repo := NewClubRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newClub("chess")))

	dup := newClub("chess")
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	other := newClub("go-club")
	require.NoError(t, repo.Create(ctx, other))

	taken := "chess"
	_, err = repo.Update(ctx, other.ID, &entities.UpdateClubInput{Slug: &taken})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestClubRepository_UpdatePartialMerge(t *testing.T) {
	db := newTestDB(t)
	createClubTable(t, db)
	repo := NewClubRepository(db)
	ctx := context.Background()

	club := newClub("music")
	require.NoError(t, repo.Create(ctx, club))

	title := "Music Club"
	updated, err := repo.Update(ctx, club.ID, &entities.UpdateClubInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Music Club", updated.Title)
	// fields absent from the input stay untouched
	assert.Equal(t, "music", updated.Slug)
	assert.Equal(t, "robots", updated.ShortDescription)
	assert.True(t, updated.IsActive)
	assert.Len(t, updated.Links, 2)

	// applying the same update again converges to the same state
	again, err := repo.Update(ctx, club.ID, &entities.UpdateClubInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, updated.Title, again.Title)
	assert.Equal(t, updated.Slug, again.Slug)

	// empty input is a no-op read
	same, err := repo.Update(ctx, club.ID, &entities.UpdateClubInput{})
	require.NoError(t, err)
	assert.Equal(t, "Music Club", same.Title)

	_, err = repo.Update(ctx, uuid.New(), &entities.UpdateClubInput{Title: &title})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClubRepository_UpdateReplacesLinks(t *testing.T) {
	db := newTestDB(t)
	createClubTable(t, db)
	repo := NewClubRepository(db)
	ctx := context.Background()

	club := newClub("photo")
	require.NoError(t, repo.Create(ctx, club))

	links := []entities.LinkInput{
		{Type: entities.LinkTypeTelegramChat, Link: "https://t.me/photo_chat"},
	}
	updated, err := repo.Update(ctx, club.ID, &entities.UpdateClubInput{Links: &links})
	require.NoError(t, err)
	require.Len(t, updated.Links, 1)
	assert.Equal(t, entities.LinkTypeTelegramChat, updated.Links[0].Type)

	empty := []entities.LinkInput{}
	updated, err = repo.Update(ctx, club.ID, &entities.UpdateClubInput{Links: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Links)
}

func TestClubRepository_SetLogoFileID(t *testing.T) {
	db := newTestDB(t)
	createClubTable(t, db)
	repo := NewClubRepository(db)
	ctx := context.Background()

	club := newClub("dance")
	require.NoError(t, repo.Create(ctx, club))

	updated, err := repo.SetLogoFileID(ctx, club.ID, "file-1")
	require.NoError(t, err)
	assert.Equal(t, "file-1", updated.LogoFileID.String)

	updated, err = repo.SetLogoFileID(ctx, club.ID, "file-2")
	require.NoError(t, err)
	assert.Equal(t, "file-2", updated.LogoFileID.String)

	_, err = repo.SetLogoFileID(ctx, uuid.New(), "file-3")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClubRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	createClubTable(t, db)
	repo := NewClubRepository(db)
	ctx := context.Background()

	club := newClub("debate")
	require.NoError(t, repo.Create(ctx, club))

	require.NoError(t, repo.Delete(ctx, club.ID))

	_, err := repo.GetByID(ctx, club.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	// deleting twice is a clean not-found, not a fault
	err = repo.Delete(ctx, club.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClubRepository_ListByLeader(t *testing.T) {
	db := newTestDB(t)
	createClubTable(t, db)
	repo := NewClubRepository(db)
	ctx := context.Background()

	leader := "innohassle-42"

	a := newClub("alpha")
	a.LeaderInnohassleID = null.StringFrom(leader)
	require.NoError(t, repo.Create(ctx, a))

	b := newClub("beta")
	require.NoError(t, repo.Create(ctx, b))

	c := newClub("gamma")
	c.LeaderInnohassleID = null.StringFrom(leader)
	require.NoError(t, repo.Create(ctx, c))

	led, err := repo.ListByLeader(ctx, leader)
	require.NoError(t, err)
	require.Len(t, led, 2)
	for _, club := range led {
		assert.Equal(t, leader, club.LeaderInnohassleID.String)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
