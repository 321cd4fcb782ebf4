package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Invariante: la categoría referenciada
// pertenece a la misma empresa que el producto.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal
	Code       string
	ImageURL   string
	Highlight  bool
	CategoryID string
	CompanyID  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
