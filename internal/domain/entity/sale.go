package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta a un cliente. Value es el subtotal calculado de los items;
// Discount y Percentage se almacenan tal cual, sin combinarse con Value.
type Sale struct {
	ID         string
	Value      decimal.Decimal
	Discount   decimal.Decimal
	Percentage decimal.Decimal
	Online     bool
	Disclosure bool
	CustomerID string
	CompanyID  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SaleItem línea de una venta.
type SaleItem struct {
	ID        string
	Quantity  int64
	ProductID string
	SaleID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
