package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT" // Order placed, awaiting bank transfer
	OrderStatusPaid           OrderStatus = "PAID"            // Payment proof accepted
	OrderStatusShipped        OrderStatus = "SHIPPED"         // Handed to the courier
	OrderStatusDelivered      OrderStatus = "DELIVERED"       // Customer received the parcel
)

// OrderStatuses lists every accepted status value. There is no enforced
// transition graph; the admin path may set any of the four at any time.
var OrderStatuses = []OrderStatus{
	OrderStatusPendingPayment,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusDelivered,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, status := range OrderStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", errors.New("invalid order status: " + s)
}

// TrackingEvent is one entry of an order's append-only tracking history.
type TrackingEvent struct {
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// TrackingHistory is stored as a JSON array column.
type TrackingHistory []TrackingEvent

func (h TrackingHistory) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	b, err := json.Marshal(h)
	return string(b), err
}

func (h *TrackingHistory) Scan(value interface{}) error {
	if value == nil {
		*h = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return errors.New("unsupported type for TrackingHistory")
	}
}

// Address is a free-form address document stored as a JSON column.
type Address map[string]interface{}

func (a Address) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *Address) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported type for Address")
	}
}

type Order struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	UserID        *string `gorm:"index" json:"user_id"`
	CustomerName  string  `gorm:"not null" json:"customer_name"`
	CustomerEmail string  `gorm:"not null" json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	// Amounts in whole rupiah. Subtotal is the sum of line totals; Total adds shipping.
	Subtotal        int64           `json:"subtotal"`
	ShippingCourier string          `json:"shipping_courier"`
	ShippingService string          `json:"shipping_service"`
	ShippingCost    int64           `json:"shipping_cost"`
	Total           int64           `json:"total"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'PENDING_PAYMENT'" json:"status"`
	InvoiceURL      string          `json:"invoice_url"`
	PaymentProofURL string          `json:"payment_proof_url"`
	TrackingNumber  string          `gorm:"index" json:"tracking_number"`
	TrackingHistory TrackingHistory `gorm:"type:json" json:"tracking_history"`
	Address         Address         `gorm:"type:json" json:"address"`
	Notes           string          `json:"notes"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem snapshots the product name and unit price at the moment the order
// was placed. It is never re-read from the live product.
type OrderItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderID     string `gorm:"index" json:"order_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	PriceEach   int64  `json:"price_each"`
	Quantity    int    `json:"quantity"`
}
