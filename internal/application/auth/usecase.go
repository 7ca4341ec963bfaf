package auth

import (
	"context"
	"errors"

	"github.com/jhoicas/rh-admin-api/internal/application/dto"
	"github.com/jhoicas/rh-admin-api/internal/domain"
	"github.com/jhoicas/rh-admin-api/internal/domain/entity"
	"github.com/jhoicas/rh-admin-api/internal/domain/repository"
	"github.com/jhoicas/rh-admin-api/pkg/hash"
	"github.com/jhoicas/rh-admin-api/pkg/token"
)

// AuthUseCase caso de uso de autenticación: login contra el digest almacenado.
//
// El token devuelto es opaco y no se persiste ni se valida en ningún otro
// endpoint. Queda abierta la decisión de incorporar validación real de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   hash.PasswordHasher
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher hash.PasswordHasher) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher}
}

// Login verifica email/password contra el digest almacenado y genera un token
// opaco. Email desconocido y contraseña incorrecta devuelven el mismo
// ErrInvalidCredentials para no permitir enumerar usuarios.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.hasher.Verify(user.PasswordDigest, in.Password); err != nil {
		if errors.Is(err, hash.ErrMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	tok, err := token.New()
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		User:    toUserResponse(user),
		Token:   tok,
	}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
		Agency:   u.Agency,
	}
}
