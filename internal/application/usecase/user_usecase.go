package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/rh-admin-api/internal/application/dto"
	"github.com/jhoicas/rh-admin-api/internal/domain"
	"github.com/jhoicas/rh-admin-api/internal/domain/entity"
	"github.com/jhoicas/rh-admin-api/internal/domain/repository"
	"github.com/jhoicas/rh-admin-api/pkg/hash"
)

// UserUseCase casos de uso CRUD para usuarios (administradores del panel).
type UserUseCase struct {
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	hasher       hash.PasswordHasher
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, employeeRepo repository.EmployeeRepository, hasher hash.PasswordHasher) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, employeeRepo: employeeRepo, hasher: hasher}
}

// Create crea un usuario: verifica unicidad del email, digiere la contraseña y
// persiste. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (int64, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrEmailAlreadyExists
	}
	digest, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return 0, err
	}
	user := &entity.User{
		Name:           in.Name,
		LastName:       in.LastName,
		Email:          in.Email,
		PasswordDigest: digest,
		Agency:         in.Agency,
	}
	return uc.userRepo.Create(ctx, user)
}

// GetByID obtiene un usuario. Devuelve ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := toUserResponse(user)
	return &out, nil
}

// List lista todos los usuarios, sin el digest.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, toUserResponse(u))
	}
	return items, nil
}

// Update sobreescribe name/last_name/email/agency siempre; el digest solo se
// recalcula si llega una contraseña nueva no vacía (full replace del resto).
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Name = in.Name
	user.LastName = in.LastName
	user.Email = in.Email
	user.Agency = in.Agency
	if strings.TrimSpace(in.Password) != "" {
		digest, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return err
		}
		user.PasswordDigest = digest
	}
	return uc.userRepo.Update(ctx, user)
}

// Delete elimina un usuario sin empleados asociados. Si algún empleado lo
// referencia devuelve ErrUserHasEmployees: no hay cascada ni huérfanos.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	n, err := uc.employeeRepo.CountByUser(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrUserHasEmployees
	}
	return uc.userRepo.Delete(ctx, id)
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
