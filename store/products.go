package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/666amost/mitrabuana/models"
)

// ProductFilter narrows and sorts a catalog listing. Zero values mean "no
// filter".
type ProductFilter struct {
	Search     string
	CategoryID uint
	MinPrice   int64
	MaxPrice   int64
	SortBy     string
	SortOrder  string
}

func (f ProductFilter) orderClause() string {
	sortBy := f.SortBy
	switch sortBy {
	case "name", "price", "stock", "created_at":
	default:
		sortBy = "name"
	}
	order := strings.ToLower(f.SortOrder)
	if order != "asc" && order != "desc" {
		order = "asc"
	}
	return fmt.Sprintf("%s %s", sortBy, order)
}

func (s *Store) ListProducts(filter ProductFilter) ([]models.Product, error) {
	query := s.DB.Model(&models.Product{}).Preload("Categories")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.CategoryID != 0 {
		query = query.
			Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Where("pc.category_id = ?", filter.CategoryID)
	}

	var products []models.Product
	if err := query.Order(filter.orderClause()).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductsByIDs returns the products that exist; missing ids are simply
// absent from the result (CreateOrder re-checks completeness transactionally).
func (s *Store) GetProductsByIDs(ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := s.DB.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) GetProduct(id string) (*models.Product, error) {
	var product models.Product
	if err := s.DB.Preload("Categories").First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *Store) CreateProduct(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	return s.DB.Create(product).Error
}

// UpdateProduct persists a loaded product row. Categories on the struct are
// the product's full set, so categories left off are detached.
func (s *Store) UpdateProduct(product *models.Product) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(product).Error; err != nil {
			return err
		}
		return tx.Model(product).Association("Categories").Replace(product.Categories)
	})
}

func (s *Store) DeleteProduct(id string) error {
	result := s.DB.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Categories ----

func (s *Store) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) GetCategories(ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := s.DB.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *Store) CreateCategory(category *models.Category) error {
	return s.DB.Create(category).Error
}

func (s *Store) UpdateCategory(category *models.Category) error {
	return s.DB.Save(category).Error
}

func (s *Store) DeleteCategory(id uint) error {
	result := s.DB.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
