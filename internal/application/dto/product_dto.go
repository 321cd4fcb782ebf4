package dto

import "github.com/shopspring/decimal"

// ProductInput datos de producto. La categoría debe pertenecer a la misma empresa.
type ProductInput struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Code       string          `json:"code"`
	ImageURL   string          `json:"imageUrl"`
	Highlight  bool            `json:"highlight"`
	CategoryID string          `json:"categoryId"`
	CompanyID  string          `json:"companyId"`
}

// ProductResponse producto con categoría y empresa resueltas.
type ProductResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Price     decimal.Decimal   `json:"price"`
	Code      string            `json:"code"`
	ImageURL  string            `json:"imageUrl,omitempty"`
	Highlight bool              `json:"highlight"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
	Category  *CategoryResponse `json:"category,omitempty"`
	Company   *CompanyResponse  `json:"company,omitempty"`
}
