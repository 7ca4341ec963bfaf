package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/rh-admin-api/internal/application/dto"
	"github.com/jhoicas/rh-admin-api/internal/domain"
	"github.com/jhoicas/rh-admin-api/internal/domain/entity"
	"github.com/jhoicas/rh-admin-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso para empleados. Create y Update exigen que el
// usuario referenciado por id_user exista; no se escribe nada si no existe.
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
	userRepo     repository.UserRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository, userRepo repository.UserRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo, userRepo: userRepo}
}

// Create crea un empleado. Devuelve ErrUserNotFound si id_user no referencia
// un usuario existente y ErrInvalidInput si alguna fecha no es yyyy-mm-dd.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (int64, error) {
	employee, err := uc.buildEmployee(ctx, in)
	if err != nil {
		return 0, err
	}
	return uc.employeeRepo.Create(ctx, employee)
}

// GetByID obtiene un empleado. Devuelve ErrEmployeeNotFound si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	employee, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	out := toEmployeeResponse(employee)
	return &out, nil
}

// List lista todos los empleados con el email del usuario dueño.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toEmployeeResponse(e))
	}
	return items, nil
}

// Update sobreescribe todas las columnas mutables (full replace, no patch
// parcial). El empleado y el usuario referenciado deben existir.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.EmployeeRequest) error {
	existing, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrEmployeeNotFound
	}
	employee, err := uc.buildEmployee(ctx, in)
	if err != nil {
		return err
	}
	employee.ID = id
	return uc.employeeRepo.Update(ctx, employee)
}

// buildEmployee valida la referencia id_user, parsea las fechas de entrada y
// arma la entidad lista para persistir.
func (uc *EmployeeUseCase) buildEmployee(ctx context.Context, in dto.EmployeeRequest) (*entity.Employee, error) {
	owner, err := uc.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	dateOfBirth, err := dto.ParseDate(in.DateOfBirth)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	highDate, err := dto.ParseDate(in.HighDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var lowDate *time.Time
	if in.LowDate != "" {
		d, err := dto.ParseDate(in.LowDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		lowDate = &d
	}
	return &entity.Employee{
		Name:        in.Name,
		LastName:    in.LastName,
		Agency:      in.Agency,
		DateOfBirth: dateOfBirth,
		HighDate:    highDate,
		Status:      in.Status,
		LowDate:     lowDate,
		Photo:       in.Photo,
		UserID:      in.UserID,
	}, nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		LastName:    e.LastName,
		Agency:      e.Agency,
		DateOfBirth: dto.FormatDate(e.DateOfBirth),
		HighDate:    dto.FormatDate(e.HighDate),
		Status:      e.Status,
		LowDate:     dto.FormatDatePtr(e.LowDate),
		Photo:       e.Photo,
		UserID:      e.UserID,
		UserEmail:   e.UserEmail,
	}
}
