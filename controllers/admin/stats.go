package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/models"
	"github.com/666amost/mitrabuana/store"
)

// GetDashboardStats backs the admin landing page counters.
func GetDashboardStats(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := s.GetDashboardStats()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// GetAllUsers lists registered accounts (public fields only).
func GetAllUsers(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.ListUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=customer admin"`
}

// SetUserRole grants or revokes admin access.
func SetUserRole(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := s.SetUserRole(c.Param("userID"), models.Role(req.Role))
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
