package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "clubs.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. AppErrors keep their status and reason;
// anything else becomes a 500 without leaking the underlying error.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	body := gin.H{"message": appErr.Message}
	if appErr.Reason != "" {
		body["reason"] = appErr.Reason
	}
	c.AbortWithStatusJSON(appErr.Code, body)
}
