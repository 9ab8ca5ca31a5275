package orderControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/invoice"
	"github.com/666amost/mitrabuana/models"
	"github.com/666amost/mitrabuana/shipping"
	"github.com/666amost/mitrabuana/store"
)

type CheckoutRequest struct {
	CustomerName  string                 `json:"customer_name" binding:"required"`
	CustomerEmail string                 `json:"customer_email" binding:"required,email"`
	CustomerPhone string                 `json:"customer_phone"`
	Address       models.Address         `json:"address" binding:"required"`
	Courier       string                 `json:"courier" binding:"required"`
	Service       string                 `json:"service" binding:"required"`
	Items         []store.OrderItemInput `json:"items" binding:"required"`
	Notes         string                 `json:"notes"`
}

// parcelFor approximates the combined parcel: weights add up, the bounding
// box takes the largest dimension seen on any product.
func parcelFor(products []models.Product, items []store.OrderItemInput) (int, shipping.Dimensions) {
	byID := make(map[string]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	var weightGram int
	var dims shipping.Dimensions
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		weightGram += product.WeightGram * item.Quantity
		if product.LengthCm > dims.L {
			dims.L = product.LengthCm
		}
		if product.WidthCm > dims.W {
			dims.W = product.WidthCm
		}
		if product.HeightCm > dims.H {
			dims.H = product.HeightCm
		}
	}
	return weightGram, dims
}

// CheckoutHandler quotes shipping, persists the order and renders its
// invoice. The shipping quote is computed server-side; the client never
// supplies a cost.
func CheckoutHandler(s *store.Store, gen *invoice.Generator, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order must contain at least one item"})
			return
		}

		productIDs := make([]string, 0, len(req.Items))
		for _, item := range req.Items {
			productIDs = append(productIDs, item.ProductID)
		}
		products, err := s.GetProductsByIDs(productIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if len(products) != len(productIDs) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Some products were not found"})
			return
		}

		weightGram, dims := parcelFor(products, req.Items)
		quote, err := shipping.Estimate(weightGram, dims, req.Courier, req.Service, nil)
		if err != nil {
			switch {
			case errors.Is(err, shipping.ErrRateNotFound), errors.Is(err, shipping.ErrOverCapacity):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		input := store.CreateOrderInput{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Address:       req.Address,
			Courier:       req.Courier,
			Service:       req.Service,
			ShippingCost:  quote.Cost,
			Items:         req.Items,
			Notes:         req.Notes,
		}
		if userIDVal, exists := c.Get("user_id"); exists {
			if userID, ok := userIDVal.(string); ok && userID != "" {
				input.UserID = &userID
			}
		}

		order, err := s.CreateOrder(input)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrEmptyOrder):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, store.ErrProductsNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, store.ErrInsufficientStock):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			}
			return
		}

		url, err := gen.Generate(order)
		if err != nil {
			// Order is already persisted; the invoice can be regenerated
			// from the admin page.
			log.Printf("⚠️ Invoice generation failed for order %s: %v", order.ID, err)
		} else if updated, setErr := s.SetInvoiceURL(order.ID, url); setErr == nil {
			order = updated
		}

		hub.BroadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"order":    order,
			"shipping": quote,
		})
	}
}

// GetUserOrdersHandler lists the authenticated user's orders, newest first.
func GetUserOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orders, err := s.ListOrdersByUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetUserOrderHandler returns one of the authenticated user's orders; other
// users' orders read as not found.
func GetUserOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		order, err := s.GetOrder(c.Param("orderID"))
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
		c.JSON(http.StatusOK, order)
	}
}
