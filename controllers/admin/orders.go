package adminController

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/invoice"
	"github.com/666amost/mitrabuana/models"
	"github.com/666amost/mitrabuana/store"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateTrackingRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
	Note           string `json:"note"`
}

// GetAllOrders lists orders newest-first, optionally filtered by status.
func GetAllOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var status *models.OrderStatus
		if raw := c.Query("status"); raw != "" {
			parsed, err := models.ParseOrderStatus(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			status = &parsed
		}

		orders, err := s.ListOrders(status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := s.GetOrder(c.Param("orderID"))
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus sets any of the four statuses. Transitions are not
// constrained.
func UpdateOrderStatus(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := s.UpdateOrderStatus(c.Param("orderID"), status)
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateTracking sets the airway bill and appends one history entry.
func UpdateTracking(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateTrackingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		note := req.Note
		if note == "" {
			note = "Update"
		}
		order, err := s.AppendTracking(c.Param("orderID"), req.TrackingNumber, models.TrackingEvent{
			Status:    note,
			Timestamp: time.Now(),
		})
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tracking"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// RegenerateInvoice re-renders the invoice PDF and stores the fresh URL.
func RegenerateInvoice(s *store.Store, gen *invoice.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := s.GetOrder(c.Param("orderID"))
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		url, err := gen.Generate(order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
			return
		}
		updated, err := s.SetInvoiceURL(order.ID, url)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save invoice URL"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
