package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/andriwibowo/blognest/internal/domain/repository"
	"github.com/andriwibowo/blognest/pkg/helpers"
	"github.com/andriwibowo/blognest/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxUserKey   = "user"
)

// Auth validates the bearer token from the Authorization header and
// resolves the full user record. It sets userID and user in the Gin
// context on success; no downstream handler runs otherwise.
func Auth(users repository.UserRepository, tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		u, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			status := http.StatusUnauthorized
			msg := "could not resolve user"
			if errors.Is(err, repository.ErrNotFound) {
				// The token is valid but the subject no longer exists.
				status = http.StatusNotFound
				msg = "user not found"
			}
			response.Error[any](c, status, msg, nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
