package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra a un proveedor. Value es el total calculado
// (Σ precio × cantidad de sus items), nunca viene del cliente.
type Purchase struct {
	ID         string
	Value      decimal.Decimal
	SupplierID string
	CompanyID  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PurchaseItem línea de una compra.
type PurchaseItem struct {
	ID         string
	Quantity   int64
	ProductID  string
	PurchaseID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
