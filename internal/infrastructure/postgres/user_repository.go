package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/rh-admin-api/internal/domain"
	"github.com/jhoicas/rh-admin-api/internal/domain/entity"
	"github.com/jhoicas/rh-admin-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario y devuelve el id generado.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (name, last_name, email, password, agency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		user.Name, user.LastName, user.Email, user.PasswordDigest, user.Agency,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, name, last_name, email, password, agency
		FROM users WHERE id = $1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.LastName, &u.Email, &u.PasswordDigest, &u.Agency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email (match exacto).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, last_name, email, password, agency
		FROM users WHERE email = $1 LIMIT 1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.LastName, &u.Email, &u.PasswordDigest, &u.Agency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// List lista todos los usuarios, más recientes primero.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, name, last_name, email, password, agency
		FROM users ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.LastName, &u.Email, &u.PasswordDigest, &u.Agency); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update sobreescribe todas las columnas mutables, incluido el digest.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, last_name = $3, email = $4, password = $5, agency = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Name, user.LastName, user.Email, user.PasswordDigest, user.Agency,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
