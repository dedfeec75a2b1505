package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/interfaces/http/response"
	"clubs.backend/internal/usecases"
)

type LeaderHandler struct {
	leaders *usecases.LeaderUsecase
}

func NewLeaderHandler(leaders *usecases.LeaderUsecase) *LeaderHandler {
	return &LeaderHandler{leaders: leaders}
}

// List returns all club leaders the identity gateway knows about.
// Unresolvable leaders are dropped from the result.
// GET /api/v1/leaders
func (h *LeaderHandler) List(c *gin.Context) {
	leaders, err := h.leaders.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, leaders)
}

// GetByClubID returns the leader of a club, or null when the club has no
// resolvable leader.
// GET /api/v1/leaders/by-club-id/:id
func (h *LeaderHandler) GetByClubID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid club ID"))
		return
	}

	leader, err := h.leaders.GetByClubID(c.Request.Context(), id)
	if err != nil {
		respondClubError(c, err)
		return
	}
	response.Success(c, http.StatusOK, leader)
}

// GetByClubSlug returns the leader of a club addressed by slug.
// GET /api/v1/leaders/by-club-slug/:slug
func (h *LeaderHandler) GetByClubSlug(c *gin.Context) {
	leader, err := h.leaders.GetByClubSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondClubError(c, err)
		return
	}
	response.Success(c, http.StatusOK, leader)
}
