package dto

// RegisterRequest alta de usuario. El password nunca se devuelve.
type RegisterRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras autenticar.
type LoginResponse struct {
	UserID    string `json:"userId"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // minutos
}

// UserResponse usuario sin credenciales.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
