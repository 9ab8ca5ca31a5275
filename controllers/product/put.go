package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/imaging"
	"github.com/666amost/mitrabuana/storage"
	"github.com/666amost/mitrabuana/store"
)

// UpdateProduct patches product fields from a multipart form. Only the fields
// present in the form change; new images are appended to the existing list.
func UpdateProduct(s *store.Store, files storage.Store) gin.HandlerFunc {
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

		if name := c.PostForm("name"); name != "" {
			product.Name = name
		}
		if description, ok := c.GetPostForm("description"); ok {
			product.Description = description
		}
		if priceStr := c.PostForm("price"); priceStr != "" {
			price, parseErr := strconv.ParseInt(priceStr, 10, 64)
			if parseErr != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if weightStr := c.PostForm("weight_gram"); weightStr != "" {
			weightGram, parseErr := strconv.Atoi(weightStr)
			if parseErr != nil || weightGram < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight_gram"})
				return
			}
			product.WeightGram = weightGram
		}
		if stockStr := c.PostForm("stock"); stockStr != "" {
			stock, parseErr := strconv.Atoi(stockStr)
			if parseErr != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = stock
		}
		for field, dst := range map[string]*float64{
			"length_cm": &product.LengthCm,
			"width_cm":  &product.WidthCm,
			"height_cm": &product.HeightCm,
		} {
			if raw := c.PostForm(field); raw != "" {
				value, parseErr := strconv.ParseFloat(raw, 64)
				if parseErr != nil || value < 0 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + field})
					return
				}
				*dst = value
			}
		}

		if _, ok := c.GetPostForm("category_ids"); ok {
			categories, ok := parseCategoryIDs(c, s)
			if !ok {
				return
			}
			product.Categories = categories
		}

		form, formErr := c.MultipartForm()
		if formErr == nil && form != nil {
			for _, fileHeader := range form.File["images"] {
				url, uploadErr := saveProductImage(files, fileHeader.Filename, func() ([]byte, error) {
					f, openErr := fileHeader.Open()
					if openErr != nil {
						return nil, openErr
					}
					defer f.Close()
					return imaging.Normalize(f)
				})
				if uploadErr != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to process image: " + uploadErr.Error()})
					return
				}
				product.Images = append(product.Images, url)
			}
		}

		if err := s.UpdateProduct(product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
