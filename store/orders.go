package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/666amost/mitrabuana/models"
)

type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderInput struct {
	UserID        *string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       models.Address
	Courier       string
	Service       string
	ShippingCost  int64
	Items         []OrderItemInput
	Notes         string
}

// CreateOrder validates stock, snapshots line items and persists the order
// header plus its items in one transaction. Stock is taken with a conditional
// decrement (stock = stock - qty WHERE stock >= qty) so two concurrent
// checkouts cannot oversell: the loser rolls back with ErrInsufficientStock.
func (s *Store) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	productIDs := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity for product %s must be at least 1", ErrEmptyOrder, item.ProductID)
		}
		productIDs = append(productIDs, item.ProductID)
	}

	var order models.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var products []models.Product
		if err := tx.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return err
		}
		byID := make(map[string]models.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		var subtotal int64
		items := make([]models.OrderItem, 0, len(input.Items))
		for _, item := range input.Items {
			product, ok := byID[item.ProductID]
			if !ok {
				return fmt.Errorf("%w: %s", ErrProductsNotFound, item.ProductID)
			}

			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", product.ID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
			}

			subtotal += product.Price * int64(item.Quantity)
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				PriceEach:   product.Price,
				Quantity:    item.Quantity,
			})
		}

		order = models.Order{
			ID:              uuid.NewString(),
			UserID:          input.UserID,
			CustomerName:    input.CustomerName,
			CustomerEmail:   input.CustomerEmail,
			CustomerPhone:   input.CustomerPhone,
			Subtotal:        subtotal,
			ShippingCourier: input.Courier,
			ShippingService: input.Service,
			ShippingCost:    input.ShippingCost,
			Total:           subtotal + input.ShippingCost,
			Status:          models.OrderStatusPendingPayment,
			TrackingHistory: models.TrackingHistory{},
			Address:         input.Address,
			Notes:           input.Notes,
			Items:           items,
			CreatedAt:       time.Now(),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) ListOrders(status *models.OrderStatus) ([]models.Order, error) {
	query := s.DB.Preload("Items").Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) ListOrdersByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *Store) FindOrderByTrackingNumber(awb string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Items").First(&order, "tracking_number = ?", awb).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus accepts any of the four statuses; there is no enforced
// transition graph.
func (s *Store) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	return s.updateOrder(id, map[string]interface{}{"status": status})
}

func (s *Store) SetInvoiceURL(id, url string) (*models.Order, error) {
	return s.updateOrder(id, map[string]interface{}{"invoice_url": url})
}

func (s *Store) AttachPaymentProof(id, url string) (*models.Order, error) {
	return s.updateOrder(id, map[string]interface{}{"payment_proof_url": url})
}

// AppendTracking sets the airway bill number and appends one event to the
// order's tracking history. History is append-only; entries are never
// rewritten or deduplicated.
func (s *Store) AppendTracking(id, trackingNumber string, event models.TrackingEvent) (*models.Order, error) {
	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		order.TrackingNumber = trackingNumber
		order.TrackingHistory = append(order.TrackingHistory, event)
		return tx.Model(&order).Updates(map[string]interface{}{
			"tracking_number":  order.TrackingNumber,
			"tracking_history": order.TrackingHistory,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) updateOrder(id string, updates map[string]interface{}) (*models.Order, error) {
	result := s.DB.Model(&models.Order{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOrder(id)
}
