package dto

import "github.com/shopspring/decimal"

// OrderItemInput línea de una compra o venta.
type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// PurchaseInput datos de compra. Value no se acepta: siempre se recalcula.
type PurchaseInput struct {
	Items      []OrderItemInput `json:"items"`
	SupplierID string           `json:"supplierId"`
	CompanyID  string           `json:"companyId"`
}

// SaleInput datos de venta. Discount y Percentage se guardan tal cual;
// Value no se acepta: siempre se recalcula de los items.
type SaleInput struct {
	Items      []OrderItemInput `json:"items"`
	Discount   decimal.Decimal  `json:"discount"`
	Percentage decimal.Decimal  `json:"percentage"`
	Online     bool             `json:"online"`
	Disclosure bool             `json:"disclosure"`
	CustomerID string           `json:"customerId"`
	CompanyID  string           `json:"companyId"`
}

// PurchaseItemResponse línea de compra con su producto resuelto.
type PurchaseItemResponse struct {
	ID        string           `json:"id"`
	Quantity  int64            `json:"quantity"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// PurchaseResponse compra con proveedor, empresa e items resueltos.
type PurchaseResponse struct {
	ID        string                 `json:"id"`
	Value     decimal.Decimal        `json:"value"`
	CreatedAt string                 `json:"createdAt"`
	UpdatedAt string                 `json:"updatedAt"`
	Supplier  *SupplierResponse      `json:"supplier,omitempty"`
	Company   *CompanyResponse       `json:"company,omitempty"`
	Items     []PurchaseItemResponse `json:"items"`
}

// SaleItemResponse línea de venta con su producto resuelto.
type SaleItemResponse struct {
	ID        string           `json:"id"`
	Quantity  int64            `json:"quantity"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// SaleResponse venta con cliente, empresa e items resueltos.
type SaleResponse struct {
	ID         string             `json:"id"`
	Value      decimal.Decimal    `json:"value"`
	Discount   decimal.Decimal    `json:"discount"`
	Percentage decimal.Decimal    `json:"percentage"`
	Online     bool               `json:"online"`
	Disclosure bool               `json:"disclosure"`
	CreatedAt  string             `json:"createdAt"`
	UpdatedAt  string             `json:"updatedAt"`
	Customer   *CustomerResponse  `json:"customer,omitempty"`
	Company    *CompanyResponse   `json:"company,omitempty"`
	Items      []SaleItemResponse `json:"items"`
}
