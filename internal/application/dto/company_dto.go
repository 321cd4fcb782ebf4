package dto

// CompanyInput datos de empresa (creación y actualización completa).
type CompanyInput struct {
	Name  string `json:"name"`
	Trade string `json:"trade"`
	CNPJ  string `json:"cnpj"`
}

// CompanyResponse empresa con su usuario dueño resuelto.
type CompanyResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Trade     string        `json:"trade"`
	CNPJ      string        `json:"cnpj"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
	User      *UserResponse `json:"user,omitempty"`
}
