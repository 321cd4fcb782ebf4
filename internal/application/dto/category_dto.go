package dto

// CategoryInput datos de categoría. CompanyID acota la operación.
type CategoryInput struct {
	Name      string `json:"name"`
	CompanyID string `json:"companyId"`
}

// CategoryResponse categoría con su empresa resuelta.
type CategoryResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
	Company   *CompanyResponse `json:"company,omitempty"`
}
