package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, phone, email, username, role, status, position, hired_at, created_at, updated_at`

// UserRepo implementación del puerto UserRepository (personal de la tienda) sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.StaffUser, error) {
	var u entity.StaffUser
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Phone, &u.Email, &u.Username, &role, &u.Status,
		&u.Position, &u.HiredAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = entity.Role(role)
	return &u, nil
}

// Create persiste un nuevo usuario. Email y username son únicos.
func (r *UserRepo) Create(ctx context.Context, u *entity.StaffUser) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO staff_users (name, phone, email, username, role, status, position, hired_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		u.Name, u.Phone, u.Email, u.Username, string(u.Role), u.Status, u.Position, u.HiredAt, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.StaffUser, error) {
	return r.getOne(ctx, "get user", `SELECT `+userColumns+` FROM staff_users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (sin distinguir mayúsculas).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.StaffUser, error) {
	return r.getOne(ctx, "get user by email", `SELECT `+userColumns+` FROM staff_users WHERE lower(email) = lower($1)`, email)
}

// GetByUsername obtiene un usuario por username (sin distinguir mayúsculas).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.StaffUser, error) {
	return r.getOne(ctx, "get user by username", `SELECT `+userColumns+` FROM staff_users WHERE lower(username) = lower($1)`, username)
}

func (r *UserRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.StaffUser, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (r *UserRepo) Update(ctx context.Context, u *entity.StaffUser) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE staff_users SET name = $2, phone = $3, email = $4, username = $5, role = $6, status = $7,
			position = $8, hired_at = $9, updated_at = $10
		WHERE id = $1`,
		u.ID, u.Name, u.Phone, u.Email, u.Username, string(u.Role), u.Status, u.Position, u.HiredAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.StaffUser, int, error) {
	var w filter
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM staff_users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	suffix, args := w.page(limit, offset)
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM staff_users ORDER BY name`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.StaffUser, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, total, rows.Err()
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM staff_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
