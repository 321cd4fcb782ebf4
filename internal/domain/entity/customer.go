package entity

import "time"

// Customer cliente de la empresa.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Cellphone string
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
