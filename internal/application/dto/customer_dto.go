package dto

// CustomerInput datos de cliente. CompanyID acota la operación.
type CustomerInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone"`
	CompanyID string `json:"companyId"`
}

// CustomerResponse cliente con su empresa resuelta.
type CustomerResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Cellphone string           `json:"cellphone"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
	Company   *CompanyResponse `json:"company,omitempty"`
}
