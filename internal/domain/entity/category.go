package entity

import "time"

// Category categoría de productos de la empresa.
type Category struct {
	ID        string
	Name      string
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
