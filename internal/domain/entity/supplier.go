package entity

import "time"

// Supplier proveedor de la empresa. CNPJ es opcional; cuando está presente
// es único dentro de la empresa.
type Supplier struct {
	ID        string
	Name      string
	CNPJ      string // opcional; solo dígitos cuando está presente
	Email     string
	Cellphone string
	Address   string
	City      string
	State     string
	Landmark  string
	Note      string
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
