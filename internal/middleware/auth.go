package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/models"
	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/token"
)

const userIDKey = "auth.userID"

// Auth verifies the bearer token on every protected request and stashes the
// verified caller id in the request context for the handlers.
func Auth(signer *token.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		// The browser client sends the raw token; a Bearer prefix is
		// accepted too.
		if after, ok := strings.CutPrefix(raw, "Bearer "); ok {
			raw = strings.TrimSpace(after)
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "no token provided"})
			return
		}

		userID, err := signer.Verify(raw)
		if errors.Is(err, token.ErrTokenExpired) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "token expired"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the caller identity established by Auth. It is only valid
// on routes behind the Auth middleware.
func UserID(c *gin.Context) uuid.UUID {
	value, _ := c.Get(userIDKey)
	userID, _ := value.(uuid.UUID)
	return userID
}
