package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/666amost/mitrabuana/models"
)

func TestListProductsFilters(t *testing.T) {
	s := newTestStore(t)

	oli := models.Category{Name: "Oli Mesin", Slug: "oli-mesin"}
	require.NoError(t, s.CreateCategory(&oli))

	require.NoError(t, s.CreateProduct(&models.Product{
		Name: "Oli Mesin Sintetik 10W-40", Price: 85000, WeightGram: 920, Stock: 5,
		Categories: []models.Category{oli},
	}))
	require.NoError(t, s.CreateProduct(&models.Product{
		Name: "Kampas Rem Depan", Price: 95000, WeightGram: 400, Stock: 5,
	}))
	require.NoError(t, s.CreateProduct(&models.Product{
		Name: "Busi Iridium", Price: 60000, WeightGram: 50, Stock: 5,
	}))

	bySearch, err := s.ListProducts(ProductFilter{Search: "oli"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Oli Mesin Sintetik 10W-40", bySearch[0].Name)

	byPrice, err := s.ListProducts(ProductFilter{MinPrice: 70000, MaxPrice: 90000})
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	assert.Equal(t, int64(85000), byPrice[0].Price)

	byCategory, err := s.ListProducts(ProductFilter{CategoryID: oli.ID})
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	sorted, err := s.ListProducts(ProductFilter{SortBy: "price", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, int64(95000), sorted[0].Price)
}

func TestDeleteProductIsSoft(t *testing.T) {
	s := newTestStore(t)
	product := models.Product{Name: "Oli Gardan", Price: 30000, WeightGram: 150, Stock: 2}
	require.NoError(t, s.CreateProduct(&product))

	require.NoError(t, s.DeleteProduct(product.ID))
	_, err := s.GetProduct(product.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Row survives for historical integrity
	var count int64
	require.NoError(t, s.DB.Unscoped().Model(&models.Product{}).
		Where("id = ?", product.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.ErrorIs(t, s.DeleteProduct("missing"), ErrNotFound)
}

func TestUpdateProductKeepsUntouchedColumns(t *testing.T) {
	s := newTestStore(t)

	oli := models.Category{Name: "Oli Mesin", Slug: "oli-mesin"}
	mobil := models.Category{Name: "Mobil", Slug: "mobil"}
	require.NoError(t, s.CreateCategory(&oli))
	require.NoError(t, s.CreateCategory(&mobil))

	product := models.Product{
		Name: "Oli Mesin Sintetik 10W-40", Price: 85000, WeightGram: 920, Stock: 5,
		Images:     models.StringSlice{"/uploads/products/oli.jpg"},
		Categories: []models.Category{oli, mobil},
	}
	require.NoError(t, s.CreateProduct(&product))
	createdAt := product.CreatedAt

	loaded, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	loaded.Price = 90000
	loaded.Categories = []models.Category{oli}
	require.NoError(t, s.UpdateProduct(loaded))

	after, err := s.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), after.Price)
	assert.Equal(t, models.StringSlice{"/uploads/products/oli.jpg"}, after.Images)
	assert.False(t, after.CreatedAt.IsZero())
	assert.Equal(t, createdAt.Unix(), after.CreatedAt.Unix())
	// The supplied category set replaces the stored one
	require.Len(t, after.Categories, 1)
	assert.Equal(t, "Oli Mesin", after.Categories[0].Name)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateUser(&models.User{
		Email: "budi@example.com", PasswordHash: "x", Role: models.RoleCustomer,
	}))

	err := s.CreateUser(&models.User{
		Email: "budi@example.com", PasswordHash: "y", Role: models.RoleCustomer,
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestProfileUpdateAndRole(t *testing.T) {
	s := newTestStore(t)
	user := models.User{Email: "budi@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	require.NoError(t, s.CreateUser(&user))

	name := "Budi Santoso"
	address := models.Address{"city": "Bandung"}
	updated, err := s.UpdateProfile(user.ID, ProfileUpdate{Name: &name, Address: &address})
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.Name)
	assert.Equal(t, "Bandung", updated.Address["city"])
	// Untouched fields keep their values
	assert.Equal(t, "budi@example.com", updated.Email)

	promoted, err := s.SetUserRole(user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)
}

func TestDashboardStats(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	first, err := s.CreateOrder(checkoutInput(OrderItemInput{ProductID: "prod-oil", Quantity: 1}))
	require.NoError(t, err)
	_, err = s.CreateOrder(checkoutInput(OrderItemInput{ProductID: "prod-filter", Quantity: 1}))
	require.NoError(t, err)
	_, err = s.UpdateOrderStatus(first.ID, models.OrderStatusPaid)
	require.NoError(t, err)

	stats, err := s.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.ProductCount)
	assert.Equal(t, int64(2), stats.OrderCount)
	assert.Equal(t, int64(1), stats.OrdersByStatus[models.OrderStatusPaid])
	assert.Equal(t, int64(1), stats.OrdersByStatus[models.OrderStatusPendingPayment])
	// Only the paid order counts toward revenue
	assert.Equal(t, first.Total, stats.Revenue)
}
