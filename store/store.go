// Package store is the single persistence boundary: every read and write goes
// through a Store constructed in main and injected into the handlers.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrProductsNotFound  = errors.New("some products were not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateEmail    = errors.New("email is already registered")
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}
