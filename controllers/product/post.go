package productcontroller

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/666amost/mitrabuana/imaging"
	"github.com/666amost/mitrabuana/models"
	"github.com/666amost/mitrabuana/storage"
	"github.com/666amost/mitrabuana/store"
)

// CreateProduct creates a new product from a multipart form with optional
// image uploads and category assignment.
func CreateProduct(s *store.Store, files storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		weightStr := c.PostForm("weight_gram")
		if name == "" || priceStr == "" || weightStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and weight_gram are required"})
			return
		}

		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		weightGram, err := strconv.Atoi(weightStr)
		if err != nil || weightGram < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight_gram"})
			return
		}

		product := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			WeightGram:  weightGram,
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
		if stockStr := c.PostForm("stock"); stockStr != "" {
			stock, parseErr := strconv.Atoi(stockStr)
			if parseErr != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = stock
		}

		categories, ok := parseCategoryIDs(c, s)
		if !ok {
			return
		}
		product.Categories = categories

		form, err := c.MultipartForm()
		if err == nil && form != nil {
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
					c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to process image %s: %v", fileHeader.Filename, uploadErr)})
					return
				}
				product.Images = append(product.Images, url)
			}
		}

		if err := s.CreateProduct(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func parseCategoryIDs(c *gin.Context, s *store.Store) ([]models.Category, bool) {
	raw := c.PostForm("category_ids")
	if raw == "" {
		return nil, true
	}
	var ids []uint
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_ids format"})
			return nil, false
		}
		ids = append(ids, uint(id))
	}
	categories, err := s.GetCategories(ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return nil, false
	}
	return categories, true
}

func saveProductImage(files storage.Store, filename string, load func() ([]byte, error)) (string, error) {
	data, err := load()
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.ReplaceAll(base, " ", "_")
	path := fmt.Sprintf("products/%d-%s.jpg", time.Now().UnixMilli(), base)
	return files.Save(path, bytes.NewReader(data))
}
