package orderControllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/imaging"
	"github.com/666amost/mitrabuana/storage"
	"github.com/666amost/mitrabuana/store"
)

// UploadPaymentProofHandler stores a normalized transfer receipt at
// payment-proofs/{orderID}-{timestamp}.jpg and records its URL on the order.
// The order must belong to the authenticated user.
func UploadPaymentProofHandler(s *store.Store, files storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID := c.Param("orderID")
		order, err := s.GetOrder(orderID)
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		if order.UserID == nil || *order.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		fileHeader, err := c.FormFile("proof")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment proof image is required"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open uploaded file"})
			return
		}
		defer f.Close()

		normalized, err := imaging.Normalize(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Uploaded file is not a valid image"})
			return
		}

		path := fmt.Sprintf("payment-proofs/%s-%d.jpg", orderID, time.Now().UnixMilli())
		url, err := files.Save(path, bytes.NewReader(normalized))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store payment proof"})
			return
		}

		updated, err := s.AttachPaymentProof(orderID, url)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment proof"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
