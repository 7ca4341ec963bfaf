package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/rh-admin-api/internal/domain/entity"
	"github.com/jhoicas/rh-admin-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
// Las lecturas hacen JOIN con users para exponer user_email.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

const employeeSelect = `
	SELECT
		e.id, e.name, e.last_name, e.agency,
		e.date_of_birth, e.high_date, e.status, e.low_date,
		e.photo, e.id_user, u.email AS user_email
	FROM employees e
	JOIN users u ON e.id_user = u.id`

// Create persiste un nuevo empleado y devuelve el id generado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) (int64, error) {
	query := `
		INSERT INTO employees (name, last_name, agency, date_of_birth, high_date, status, low_date, photo, id_user)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		e.Name, e.LastName, e.Agency, e.DateOfBirth, e.HighDate, e.Status, e.LowDate, e.Photo, e.UserID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

// GetByID obtiene un empleado por ID con el email del usuario dueño.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	var e entity.Employee
	err := r.pool.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id).Scan(
		&e.ID, &e.Name, &e.LastName, &e.Agency,
		&e.DateOfBirth, &e.HighDate, &e.Status, &e.LowDate,
		&e.Photo, &e.UserID, &e.UserEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return &e, nil
}

// List lista todos los empleados con el email del usuario dueño.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.pool.Query(ctx, employeeSelect+` ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(
			&e.ID, &e.Name, &e.LastName, &e.Agency,
			&e.DateOfBirth, &e.HighDate, &e.Status, &e.LowDate,
			&e.Photo, &e.UserID, &e.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update sobreescribe todas las columnas mutables (full replace).
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, last_name = $3, agency = $4, date_of_birth = $5,
		    high_date = $6, status = $7, low_date = $8, photo = $9, id_user = $10
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Name, e.LastName, e.Agency, e.DateOfBirth,
		e.HighDate, e.Status, e.LowDate, e.Photo, e.UserID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// CountByUser cuenta los empleados asociados a un usuario.
func (r *EmployeeRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE id_user = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count employees by user: %w", err)
	}
	return n, nil
}
