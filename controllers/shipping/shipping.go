package shippingController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/shipping"
)

type EstimateRequest struct {
	WeightGram int                 `json:"weight_gram" binding:"required,min=1"`
	Dims       shipping.Dimensions `json:"dims"`
	Courier    string              `json:"courier" binding:"required"`
	Service    string              `json:"service" binding:"required"`
}

// GetRatesHandler lists the rate cards the storefront quotes from.
func GetRatesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, shipping.DefaultRateCards)
	}
}

// EstimateHandler quotes a parcel against the default rate cards.
func EstimateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EstimateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		quote, err := shipping.Estimate(req.WeightGram, req.Dims, req.Courier, req.Service, nil)
		if err != nil {
			switch {
			case errors.Is(err, shipping.ErrRateNotFound), errors.Is(err, shipping.ErrOverCapacity):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, quote)
	}
}
