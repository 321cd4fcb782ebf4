package dto

// SupplierInput datos de proveedor. CompanyID acota la operación.
type SupplierInput struct {
	Name      string `json:"name"`
	CNPJ      string `json:"cnpj"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Landmark  string `json:"landmark"`
	Note      string `json:"note"`
	CompanyID string `json:"companyId"`
}

// SupplierResponse proveedor con su empresa resuelta.
type SupplierResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CNPJ      string           `json:"cnpj,omitempty"`
	Email     string           `json:"email"`
	Cellphone string           `json:"cellphone"`
	Address   string           `json:"address"`
	City      string           `json:"city"`
	State     string           `json:"state"`
	Landmark  string           `json:"landmark,omitempty"`
	Note      string           `json:"note,omitempty"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
	Company   *CompanyResponse `json:"company,omitempty"`
}
