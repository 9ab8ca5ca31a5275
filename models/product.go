package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// StringSlice is stored as a JSON array column (works on both postgres and sqlite).
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

type Product struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	// Price in whole rupiah. No fractional currency.
	Price      int64       `gorm:"not null" json:"price"`
	WeightGram int         `gorm:"not null" json:"weight_gram"`
	LengthCm   float64     `json:"length_cm"`
	WidthCm    float64     `json:"width_cm"`
	HeightCm   float64     `json:"height_cm"`
	Stock      int         `json:"stock"`
	Images     StringSlice `gorm:"type:json" json:"images"`
	Categories []Category  `gorm:"many2many:product_categories;" json:"categories"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
