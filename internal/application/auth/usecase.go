package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/application/shape"
	"github.com/tu-usuario/gestor-comercial/internal/application/validate"
	"github.com/tu-usuario/gestor-comercial/internal/domain"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
	"github.com/tu-usuario/gestor-comercial/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	users  repository.UserRepository
	shaper *shape.Shaper
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, shaper *shape.Shaper, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, shaper: shaper, jwtCfg: jwtCfg}
}

// Register crea un usuario: valida campos, hashea el password con bcrypt y persiste.
// Devuelve ErrDuplicate si el email ya está registrado. El password nunca vuelve.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if errs := validate.Register(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Lastname:     in.Lastname,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.shaper.User(user), nil
}

// Login verifica email/password y emite un JWT.
// Email desconocido y password incorrecto devuelven el mismo ErrInvalidCredentials.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		UserID:    user.ID,
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes,
	}, nil
}
