package entity

import "time"

// Company empresa del usuario. Toda entidad comercial cuelga de una Company
// y el acceso se autoriza por la cadena User -> Company -> entidad.
type Company struct {
	ID          string
	Name        string
	Trade       string
	CNPJ        string // solo dígitos, 14
	OwnerUserID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
