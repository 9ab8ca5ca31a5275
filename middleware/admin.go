package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/models"
	"github.com/666amost/mitrabuana/store"
)

// RequireAdmin guards the admin surface. A service credential in X-API-KEY is
// accepted as-is; otherwise the caller needs a valid token and the admin role
// on their profile row (the role column is authoritative, not the claim).
func RequireAdmin(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey := c.GetHeader("X-API-KEY"); apiKey != "" {
			expected := os.Getenv("ADMIN_API_KEY")
			if expected != "" && apiKey == expected {
				c.Next()
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			c.Abort()
			return
		}

		ValidateToken(c)
		if c.IsAborted() {
			return
		}

		userID, _ := c.Get("user_id")
		id, ok := userID.(string)
		if !ok || id == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		user, err := s.GetUser(id)
		if err != nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
