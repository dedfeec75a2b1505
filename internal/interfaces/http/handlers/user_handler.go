package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/interfaces/http/middleware"
	"clubs.backend/internal/interfaces/http/response"
	"clubs.backend/internal/usecases"
)

type UserHandler struct {
	users *usecases.UserUsecase
}

func NewUserHandler(users *usecases.UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe returns the caller's role and the clubs they lead.
// GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	innohassleID, ok := middleware.GetInnohassleID(c)
	if !ok {
		response.Error(c, domainerrors.NoCredentials())
		return
	}

	me, err := h.users.GetMe(c.Request.Context(), innohassleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, me)
}

// ChangeRole assigns a role to the user with the given email. Restricted
// to the configured superadmin allow-list.
// POST /api/v1/users/change-role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	requesterEmail, ok := middleware.GetUserEmail(c)
	if !ok {
		response.Error(c, domainerrors.NoCredentials())
		return
	}

	var input entities.ChangeRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.users.ChangeRole(c.Request.Context(), requesterEmail, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
