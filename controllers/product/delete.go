package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/store"
)

// DeleteProduct soft-deletes a product. Existing order line items keep their
// snapshot, so history is unaffected.
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteProduct(c.Param("id")); err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
