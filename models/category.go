package models

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex" json:"slug"`
	Products  []Product `gorm:"many2many:product_categories;" json:"products,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
