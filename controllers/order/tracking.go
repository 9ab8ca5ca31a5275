package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/models"
	"github.com/666amost/mitrabuana/store"
)

// trackingView strips customer PII from the public tracking page.
type trackingView struct {
	OrderID         string                 `json:"order_id"`
	Status          models.OrderStatus     `json:"status"`
	TrackingNumber  string                 `json:"tracking_number"`
	ShippingCourier string                 `json:"shipping_courier"`
	ShippingService string                 `json:"shipping_service"`
	TrackingHistory models.TrackingHistory `json:"tracking_history"`
}

// TrackByAWBHandler is the public "lacak resi" lookup by airway bill number.
func TrackByAWBHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		awb := c.Param("awb")
		if awb == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tracking number is required"})
			return
		}

		order, err := s.FindOrderByTrackingNumber(awb)
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "No order found for this tracking number"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up tracking number"})
			return
		}

		c.JSON(http.StatusOK, trackingView{
			OrderID:         order.ID,
			Status:          order.Status,
			TrackingNumber:  order.TrackingNumber,
			ShippingCourier: order.ShippingCourier,
			ShippingService: order.ShippingService,
			TrackingHistory: order.TrackingHistory,
		})
	}
}

// InvoiceRedirectHandler resolves an order id to its invoice file.
func InvoiceRedirectHandler(s *store.Store) gin.HandlerFunc {
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
		if order.InvoiceURL == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice has not been generated yet"})
			return
		}
		c.Redirect(http.StatusFound, order.InvoiceURL)
	}
}
