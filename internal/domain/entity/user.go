package entity

import "time"

// User usuario autenticable. Es dueño de a lo sumo una Company.
// PasswordHash nunca sale por la API.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Lastname     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
