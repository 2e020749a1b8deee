package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"newssense/internal/server/auth"
)

// userIDKey is the gin context key under which the guard stores the account
// ID resolved from the bearer token.
const userIDKey = "userID"

// requireAuth rejects requests without a valid bearer token and attaches the
// token's account ID to the request context. A missing header is 401; a
// present but invalid or expired token is 403.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the account ID the guard stored on the context.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
