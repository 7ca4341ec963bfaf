package repository

import (
	"context"

	"github.com/jhoicas/rh-admin-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Las lecturas incluyen UserEmail vía JOIN con Users.
// GetByID devuelve (nil, nil) cuando no existe la fila.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	// CountByUser cuenta los empleados cuyo id_user es el indicado (bloqueo de borrado).
	CountByUser(ctx context.Context, userID int64) (int, error)
}
