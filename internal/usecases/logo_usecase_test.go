package usecases

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubs.backend/internal/config"
	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/infrastructure/storage"
	"clubs.backend/pkg/imaging"
	"clubs.backend/pkg/utils"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newLogoFixture(t *testing.T) (*LogoUsecase, *memClubRepo, *memLogoStore, *entities.Club) {
	t.Helper()
	repo := newMemClubRepo()
	store := newMemLogoStore()
	uc := NewLogoUsecase(repo, store, config.LogoConfig{ThumbnailSize: 512, Quality: 80})

	club := &entities.Club{ID: utils.GenerateUUIDv7(), Slug: "robotics", Title: "Robotics", Type: entities.ClubTypeTech}
	require.NoError(t, repo.Create(context.Background(), club))
	return uc, repo, store, club
}

func isWebP(data []byte) bool {
	return len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}

func TestLogoUsecase_SetLogoTranscodesToWebP(t *testing.T) {
	uc, repo, store, club := newLogoFixture(t)
	ctx := context.Background()

	// content type omitted on purpose: the pipeline must sniff it
	updated, err := uc.SetLogo(ctx, club.ID, pngBytes(t, 700, 500), "")
	require.NoError(t, err)
	require.True(t, updated.LogoFileID.Valid)
	fileID := updated.LogoFileID.String

	full, err := store.Get(ctx, fileID, storage.FullSize)
	require.NoError(t, err)
	assert.True(t, isWebP(full), "stored logo must be webp regardless of upload format")

	thumb, err := store.Get(ctx, fileID, 512)
	require.NoError(t, err)
	require.True(t, isWebP(thumb))
	img, err := imaging.Decode(thumb, imaging.ContentTypeWebP)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 512)
	assert.LessOrEqual(t, bounds.Dy(), 512)

	// a second upload replaces the reference with a fresh file id
	updated, err = uc.SetLogo(ctx, club.ID, pngBytes(t, 100, 100), "image/png")
	require.NoError(t, err)
	assert.NotEqual(t, fileID, updated.LogoFileID.String)

	stored, err := repo.GetByID(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.LogoFileID.String, stored.LogoFileID.String)
}

func TestLogoUsecase_SetLogoRejectsNonImage(t *testing.T) {
	uc, repo, store, club := newLogoFixture(t)
	ctx := context.Background()

	_, err := uc.SetLogo(ctx, club.ID, []byte("definitely not an image"), "")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, domainerrors.ReasonInvalidInput, appErr.Reason)

	// a rejected upload must leave nothing behind
	stored, err := repo.GetByID(ctx, club.ID)
	require.NoError(t, err)
	assert.False(t, stored.LogoFileID.Valid)
	assert.Empty(t, store.objects)
}

func TestLogoUsecase_SetLogoRejectsCorruptImage(t *testing.T) {
	uc, _, _, club := newLogoFixture(t)

	// declared type is plausible but the bytes do not decode
	_, err := uc.SetLogo(context.Background(), club.ID, []byte{0x89, 'P', 'N', 'G', 0, 0, 0}, "image/png")
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "corrupt image data", appErr.Message)
}

func TestLogoUsecase_SetLogoUnknownClub(t *testing.T) {
	uc, _, _, _ := newLogoFixture(t)

	_, err := uc.SetLogo(context.Background(), utils.GenerateUUIDv7(), pngBytes(t, 10, 10), "image/png")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestLogoUsecase_GetLogoStreamsFromLocalBackend(t *testing.T) {
	uc, _, _, club := newLogoFixture(t)
	ctx := context.Background()

	// clubs without a logo are a clean not-found
	_, err := uc.GetLogo(ctx, club.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = uc.SetLogo(ctx, club.ID, pngBytes(t, 64, 64), "image/png")
	require.NoError(t, err)

	content, err := uc.GetLogo(ctx, club.ID)
	require.NoError(t, err)
	assert.Empty(t, content.RedirectURL)
	assert.True(t, isWebP(content.Data))
	assert.Equal(t, "robotics", content.Slug)
}

func TestLogoUsecase_GetLogoRedirectsFromObjectStore(t *testing.T) {
	repo := newMemClubRepo()
	store := newMemLogoStore()
	store.publicURL = "https://cdn.example.org/club-logos"
	uc := NewLogoUsecase(repo, store, config.LogoConfig{ThumbnailSize: 512, Quality: 80})
	ctx := context.Background()

	club := &entities.Club{ID: utils.GenerateUUIDv7(), Slug: "chess", Title: "Chess", Type: entities.ClubTypeHobby}
	require.NoError(t, repo.Create(ctx, club))

	updated, err := uc.SetLogo(ctx, club.ID, pngBytes(t, 64, 64), "image/png")
	require.NoError(t, err)

	content, err := uc.GetLogo(ctx, club.ID)
	require.NoError(t, err)
	assert.Nil(t, content.Data)
	assert.Equal(t, "https://cdn.example.org/club-logos/"+updated.LogoFileID.String, content.RedirectURL)
}
