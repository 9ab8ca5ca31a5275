package store

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/666amost/mitrabuana/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Order{},
		&models.OrderItem{},
	))
	return New(db)
}

func seedProducts(t *testing.T, s *Store) (oil, filter models.Product) {
	t.Helper()
	oil = models.Product{
		ID:         "prod-oil",
		Name:       "Oli Mesin Sintetik 10W-40 1L",
		Price:      85000,
		WeightGram: 920,
		Stock:      10,
	}
	filter = models.Product{
		ID:         "prod-filter",
		Name:       "Filter Oli Racing",
		Price:      45000,
		WeightGram: 250,
		Stock:      3,
	}
	require.NoError(t, s.DB.Create(&oil).Error)
	require.NoError(t, s.DB.Create(&filter).Error)
	return oil, filter
}

func checkoutInput(items ...OrderItemInput) CreateOrderInput {
	return CreateOrderInput{
		CustomerName:  "Budi Santoso",
		CustomerEmail: "budi@example.com",
		Address:       models.Address{"city": "Jakarta", "street": "Jl. Sudirman 1"},
		Courier:       "JNE",
		Service:       "REG",
		ShippingCost:  20000,
		Items:         items,
	}
}

func TestCreateOrderComputesTotals(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	order, err := s.CreateOrder(checkoutInput(
		OrderItemInput{ProductID: "prod-oil", Quantity: 2},
		OrderItemInput{ProductID: "prod-filter", Quantity: 1},
	))
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, int64(2*85000+45000), order.Subtotal)
	assert.Equal(t, order.Subtotal+20000, order.Total)
	assert.Equal(t, models.OrderStatusPendingPayment, order.Status)
	assert.Len(t, order.Items, 2)

	// Stock was decremented
	oil, err := s.GetProduct("prod-oil")
	require.NoError(t, err)
	assert.Equal(t, 8, oil.Stock)
}

func TestCreateOrderRejectsEmptyItemList(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	_, err := s.CreateOrder(checkoutInput())
	assert.ErrorIs(t, err, ErrEmptyOrder)

	var count int64
	require.NoError(t, s.DB.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	_, err := s.CreateOrder(checkoutInput(
		OrderItemInput{ProductID: "prod-oil", Quantity: 1},
		OrderItemInput{ProductID: "prod-ghost", Quantity: 1},
	))
	assert.ErrorIs(t, err, ErrProductsNotFound)

	// Transaction rolled back: no order rows and no stock taken
	var count int64
	require.NoError(t, s.DB.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
	oil, err := s.GetProduct("prod-oil")
	require.NoError(t, err)
	assert.Equal(t, 10, oil.Stock)
}

func TestCreateOrderRejectsInsufficientStock(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	_, err := s.CreateOrder(checkoutInput(
		OrderItemInput{ProductID: "prod-filter", Quantity: 4},
	))
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var orderCount, itemCount int64
	require.NoError(t, s.DB.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, s.DB.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)

	filter, err := s.GetProduct("prod-filter")
	require.NoError(t, err)
	assert.Equal(t, 3, filter.Stock)
}

func TestCreateOrderRejectsNonPositiveQuantity(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	_, err := s.CreateOrder(checkoutInput(
		OrderItemInput{ProductID: "prod-oil", Quantity: 0},
	))
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestLineItemSnapshotSurvivesPriceChange(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	order, err := s.CreateOrder(checkoutInput(
		OrderItemInput{ProductID: "prod-oil", Quantity: 1},
	))
	require.NoError(t, err)

	// Catalog price changes after the order was placed
	require.NoError(t, s.DB.Model(&models.Product{}).
		Where("id = ?", "prod-oil").
		Update("price", 99000).Error)

	reloaded, err := s.GetOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, int64(85000), reloaded.Items[0].PriceEach)
	assert.Equal(t, "Oli Mesin Sintetik 10W-40 1L", reloaded.Items[0].ProductName)
	assert.Equal(t, int64(85000), reloaded.Subtotal)
}

func TestUpdateOrderStatusAcceptsAnyKnownStatus(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	order, err := s.CreateOrder(checkoutInput(
		OrderItemInput{ProductID: "prod-oil", Quantity: 1},
	))
	require.NoError(t, err)

	// No transition graph: DELIVERED straight back to PENDING_PAYMENT is accepted
	for _, status := range []models.OrderStatus{
		models.OrderStatusDelivered,
		models.OrderStatusPendingPayment,
		models.OrderStatusPaid,
	} {
		updated, updateErr := s.UpdateOrderStatus(order.ID, status)
		require.NoError(t, updateErr)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpdateOrderStatus("missing", models.OrderStatusPaid)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendTrackingGrowsHistory(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	order, err := s.CreateOrder(checkoutInput(
		OrderItemInput{ProductID: "prod-oil", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Empty(t, order.TrackingHistory)

	first := models.TrackingEvent{Status: "Diserahkan ke kurir", Timestamp: time.Now()}
	updated, err := s.AppendTracking(order.ID, "JNE123456", first)
	require.NoError(t, err)
	assert.Equal(t, "JNE123456", updated.TrackingNumber)
	require.Len(t, updated.TrackingHistory, 1)

	second := models.TrackingEvent{Status: "Tiba di gudang transit", Timestamp: time.Now()}
	updated, err = s.AppendTracking(order.ID, "JNE123456", second)
	require.NoError(t, err)
	require.Len(t, updated.TrackingHistory, 2)
	assert.Equal(t, "Diserahkan ke kurir", updated.TrackingHistory[0].Status)
	assert.Equal(t, "Tiba di gudang transit", updated.TrackingHistory[1].Status)
}

func TestFindOrderByTrackingNumber(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	order, err := s.CreateOrder(checkoutInput(
		OrderItemInput{ProductID: "prod-filter", Quantity: 1},
	))
	require.NoError(t, err)

	_, err = s.AppendTracking(order.ID, "SICEPAT999", models.TrackingEvent{
		Status: "Manifested", Timestamp: time.Now(),
	})
	require.NoError(t, err)

	found, err := s.FindOrderByTrackingNumber("SICEPAT999")
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = s.FindOrderByTrackingNumber("UNKNOWN")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersFiltersByStatus(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	first, err := s.CreateOrder(checkoutInput(OrderItemInput{ProductID: "prod-oil", Quantity: 1}))
	require.NoError(t, err)
	_, err = s.CreateOrder(checkoutInput(OrderItemInput{ProductID: "prod-filter", Quantity: 1}))
	require.NoError(t, err)

	_, err = s.UpdateOrderStatus(first.ID, models.OrderStatusPaid)
	require.NoError(t, err)

	paid := models.OrderStatusPaid
	orders, err := s.ListOrders(&paid)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, first.ID, orders[0].ID)

	all, err := s.ListOrders(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSetInvoiceAndPaymentProofURLs(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s)

	order, err := s.CreateOrder(checkoutInput(OrderItemInput{ProductID: "prod-oil", Quantity: 1}))
	require.NoError(t, err)

	withInvoice, err := s.SetInvoiceURL(order.ID, "/uploads/invoices/"+order.ID+".pdf")
	require.NoError(t, err)
	assert.Contains(t, withInvoice.InvoiceURL, order.ID)

	withProof, err := s.AttachPaymentProof(order.ID, "/uploads/payment-proofs/proof.jpg")
	require.NoError(t, err)
	assert.NotEmpty(t, withProof.PaymentProofURL)
	// Invoice URL untouched by the proof update
	assert.Equal(t, withInvoice.InvoiceURL, withProof.InvoiceURL)
}
