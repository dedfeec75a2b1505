package usecases

import (
	"context"

	"github.com/google/uuid"

	"clubs.backend/internal/config"
	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/domain/repositories"
	"clubs.backend/internal/infrastructure/storage"
	"clubs.backend/pkg/imaging"
	"clubs.backend/pkg/utils"
)

// LogoContent is the serving decision for a stored logo: either the bytes
// to stream (local backend) or a URL to redirect to (object store).
type LogoContent struct {
	Data        []byte
	RedirectURL string
	// Slug names the download ("<slug>.webp") when streaming.
	Slug string
}

// LogoUsecase runs the logo upload pipeline and read path
type LogoUsecase struct {
	clubRepo repositories.ClubRepository
	store    storage.LogoStore
	cfg      config.LogoConfig
}

// NewLogoUsecase creates a new logo usecase
func NewLogoUsecase(clubRepo repositories.ClubRepository, store storage.LogoStore, cfg config.LogoConfig) *LogoUsecase {
	return &LogoUsecase{clubRepo: clubRepo, store: store, cfg: cfg}
}

// SetLogo validates, transcodes and stores a new logo for the club,
// then replaces the club's logo reference. The previous object is left
// behind; there is no garbage collection of old logos.
func (u *LogoUsecase) SetLogo(ctx context.Context, clubID uuid.UUID, data []byte, declaredContentType string) (*entities.Club, error) {
	if _, err := u.clubRepo.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	contentType := declaredContentType
	if contentType == "" {
		contentType = imaging.DetectContentType(data)
	}
	if !imaging.Supported(contentType) {
		return nil, domainerrors.BadRequest("invalid content type (" + contentType + ")")
	}

	img, err := imaging.Decode(data, contentType)
	if err != nil {
		return nil, domainerrors.BadRequest("corrupt image data")
	}

	full := data
	if contentType != imaging.ContentTypeWebP {
		full, err = imaging.EncodeWebP(img, u.cfg.Quality)
		if err != nil {
			return nil, err
		}
	}

	thumb, err := imaging.EncodeWebP(imaging.Thumbnail(img, u.cfg.ThumbnailSize), u.cfg.Quality)
	if err != nil {
		return nil, err
	}

	fileID := utils.GenerateFileID()
	if err := u.store.Put(ctx, fileID, storage.FullSize, full, imaging.ContentTypeWebP); err != nil {
		return nil, err
	}
	if err := u.store.Put(ctx, fileID, u.cfg.ThumbnailSize, thumb, imaging.ContentTypeWebP); err != nil {
		return nil, err
	}

	return u.clubRepo.SetLogoFileID(ctx, clubID, fileID)
}

// GetLogo resolves the club's logo for serving. Unknown clubs and clubs
// without a logo both yield ErrNotFound.
func (u *LogoUsecase) GetLogo(ctx context.Context, clubID uuid.UUID) (*LogoContent, error) {
	club, err := u.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if !club.LogoFileID.Valid || club.LogoFileID.String == "" {
		return nil, domainerrors.ErrNotFound
	}

	fileID := club.LogoFileID.String
	if url := u.store.PublicURL(fileID, storage.FullSize); url != "" {
		return &LogoContent{RedirectURL: url, Slug: club.Slug}, nil
	}

	data, err := u.store.Get(ctx, fileID, storage.FullSize)
	if err != nil {
		if err == storage.ErrObjectNotFound {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &LogoContent{Data: data, Slug: club.Slug}, nil
}
