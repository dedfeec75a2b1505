package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/interfaces/http/response"
	"clubs.backend/internal/usecases"
)

// maxLogoBytes bounds logo uploads to keep the transcoder off arbitrary
// payloads.
const maxLogoBytes = 10 << 20

type ClubHandler struct {
	clubs *usecases.ClubUsecase
	logos *usecases.LogoUsecase
}

func NewClubHandler(clubs *usecases.ClubUsecase, logos *usecases.LogoUsecase) *ClubHandler {
	return &ClubHandler{clubs: clubs, logos: logos}
}

// List returns all clubs.
// GET /api/v1/clubs
func (h *ClubHandler) List(c *gin.Context) {
	items, err := h.clubs.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create creates a new club.
// POST /api/v1/clubs
func (h *ClubHandler) Create(c *gin.Context) {
	var input entities.CreateClubInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	club, err := h.clubs.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, club)
}

// GetByID returns a club by id.
// GET /api/v1/clubs/by-id/:id
func (h *ClubHandler) GetByID(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	club, err := h.clubs.GetByID(c.Request.Context(), id)
	if err != nil {
		respondClubError(c, err)
		return
	}
	response.Success(c, http.StatusOK, club)
}

// GetBySlug returns a club by slug.
// GET /api/v1/clubs/by-slug/:slug
func (h *ClubHandler) GetBySlug(c *gin.Context) {
	club, err := h.clubs.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondClubError(c, err)
		return
	}
	response.Success(c, http.StatusOK, club)
}

// UpdateByID applies a partial update to a club.
// POST /api/v1/clubs/by-id/:id
func (h *ClubHandler) UpdateByID(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	var input entities.UpdateClubInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	club, err := h.clubs.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondClubError(c, err)
		return
	}
	response.Success(c, http.StatusOK, club)
}

// UpdateBySlug applies a partial update to a club addressed by slug.
// POST /api/v1/clubs/by-slug/:slug
func (h *ClubHandler) UpdateBySlug(c *gin.Context) {
	var input entities.UpdateClubInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	club, err := h.clubs.UpdateBySlug(c.Request.Context(), c.Param("slug"), &input)
	if err != nil {
		respondClubError(c, err)
		return
	}
	response.Success(c, http.StatusOK, club)
}

// Delete removes a club.
// DELETE /api/v1/clubs/by-id/:id
func (h *ClubHandler) Delete(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	if err := h.clubs.Delete(c.Request.Context(), id); err != nil {
		respondClubError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Club deleted"})
}

// GetLogo serves a club's logo: the local backend streams webp bytes, the
// object-store backend redirects to the public object URL.
// GET /api/v1/clubs/by-id/:id/logo
func (h *ClubHandler) GetLogo(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	content, err := h.logos.GetLogo(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("club not found or no logo available"))
			return
		}
		response.Error(c, err)
		return
	}

	if content.RedirectURL != "" {
		c.Redirect(http.StatusTemporaryRedirect, content.RedirectURL)
		return
	}

	c.Header("Content-Disposition", `inline; filename=`+content.Slug+`.webp`)
	c.Data(http.StatusOK, "image/webp", content.Data)
}

// SetLogo replaces a club's logo from a multipart upload.
// POST /api/v1/clubs/by-id/:id/logo
func (h *ClubHandler) SetLogo(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("logoFile")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("logoFile is required"))
		return
	}
	if fileHeader.Size > maxLogoBytes {
		response.Error(c, domainerrors.BadRequest("logo file too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes))
	if err != nil {
		response.Error(c, err)
		return
	}

	club, err := h.logos.SetLogo(c.Request.Context(), id, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondClubError(c, err)
		return
	}
	response.Success(c, http.StatusOK, club)
}

func parseClubID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid club ID"))
		return uuid.Nil, false
	}
	return id, true
}

func respondClubError(c *gin.Context, err error) {
	if errors.Is(err, domainerrors.ErrNotFound) {
		var appErr *domainerrors.AppError
		if errors.As(err, &appErr) {
			// Already shaped (e.g. "new leader not found in accounts").
			response.Error(c, err)
			return
		}
		response.Error(c, domainerrors.NotFound("club not found"))
		return
	}
	response.Error(c, err)
}
