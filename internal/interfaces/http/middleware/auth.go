package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/domain/repositories"
	"clubs.backend/internal/infrastructure/accounts"
	"clubs.backend/internal/interfaces/http/response"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// InnohassleIDKey is the context key for the resolved identity id
	InnohassleIDKey = "innohassleId"
	// UserEmailKey is the context key for the resolved identity email
	UserEmailKey = "userEmail"
)

// TokenVerifier verifies a bearer token against the identity gateway
type TokenVerifier interface {
	VerifyToken(token string) (*accounts.TokenClaims, error)
}

// AuthMiddleware authenticates requests with a bearer token. The token is
// read from the Authorization header only; a missing token and a rejected
// token are distinct failures (no_credentials vs invalid_credentials),
// both 401.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" || !strings.HasPrefix(authHeader, BearerPrefix) {
			response.Error(c, domainerrors.NoCredentials())
			return
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)
		if token == "" {
			response.Error(c, domainerrors.NoCredentials())
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			response.Error(c, domainerrors.InvalidCredentials())
			return
		}

		c.Set(InnohassleIDKey, claims.InnohassleID)
		c.Set(UserEmailKey, claims.Email)

		c.Next()
	}
}

// RequireAdmin allows only authenticated identities whose local user
// record has the admin role. The role comes from the local repository,
// never from the token; a missing record means no privileges.
func RequireAdmin(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		innohassleID, ok := GetInnohassleID(c)
		if !ok {
			response.Error(c, domainerrors.NoCredentials())
			return
		}

		user, err := userRepo.GetByInnohassleID(c.Request.Context(), innohassleID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				response.Error(c, domainerrors.Forbidden("admin role required"))
				return
			}
			response.Error(c, err)
			return
		}
		if user.Role != entities.UserRoleAdmin {
			response.Error(c, domainerrors.Forbidden("admin role required"))
			return
		}

		c.Next()
	}
}

// GetInnohassleID gets the authenticated identity id from context
func GetInnohassleID(c *gin.Context) (string, bool) {
	id, exists := c.Get(InnohassleIDKey)
	if !exists {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}

// GetUserEmail gets the authenticated identity email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}
