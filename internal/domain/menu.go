package domain

import (
	"errors"
	"time"
)

// MenuItem is a catalog entry, unrelated to orders.
type MenuItem struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	CreatedAt   time.Time
}

// Validate applies catalog business rules.
func (m *MenuItem) Validate() error {
	if len(m.Name) < 1 || len(m.Name) > 100 {
		return errors.New("menu item name must be 1-100 characters")
	}
	if m.Price < 0.01 {
		return errors.New("menu item price must be at least 0.01")
	}
	return nil
}
