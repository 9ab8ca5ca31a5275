package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/store"
)

func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.ProductFilter{
			Search:    c.Query("search"),
			SortBy:    c.DefaultQuery("sort_by", "name"),
			SortOrder: c.DefaultQuery("order", "asc"),
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			minPrice, err := strconv.ParseInt(minPriceStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filter.MinPrice = minPrice
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			maxPrice, err := strconv.ParseInt(maxPriceStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filter.MaxPrice = maxPrice
		}
		if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
			categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			filter.CategoryID = uint(categoryID)
		}

		products, err := s.ListProducts(filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

func GetProductByID(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := s.GetProduct(c.Param("id"))
		if err != nil {
			if err == store.ErrNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
