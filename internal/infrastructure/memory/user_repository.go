package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo personal en memoria.
type UserRepo struct {
	t *table[entity.StaffUser]
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{t: newTable(func(u entity.StaffUser) entity.StaffUser {
		u.HiredAt = clonePtr(u.HiredAt)
		return u
	})}
}

// Create persiste un usuario; email y username son únicos (sin distinguir mayúsculas).
func (r *UserRepo) Create(_ context.Context, u *entity.StaffUser) error {
	v, err := r.t.insertUnique(*u, func(v *entity.StaffUser, id int64) { v.ID = id }, userID, sameLogin(u.Email, u.Username))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func userID(v entity.StaffUser) int64 { return v.ID }

func sameLogin(email, username string) func(entity.StaffUser) bool {
	return func(v entity.StaffUser) bool {
		return strings.EqualFold(v.Email, email) || strings.EqualFold(v.Username, username)
	}
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.StaffUser, error) {
	u, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.StaffUser, error) {
	return r.first(func(v entity.StaffUser) bool { return strings.EqualFold(v.Email, email) }), nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.StaffUser, error) {
	return r.first(func(v entity.StaffUser) bool { return strings.EqualFold(v.Username, username) }), nil
}

func (r *UserRepo) first(keep func(entity.StaffUser) bool) *entity.StaffUser {
	rows := r.t.find(keep, func(a, b entity.StaffUser) bool { return a.ID < b.ID })
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

func (r *UserRepo) Update(_ context.Context, u *entity.StaffUser) error {
	return r.t.updateUnique(u.ID, userID, sameLogin(u.Email, u.Username), func(cur *entity.StaffUser) error {
		*cur = *u
		cur.HiredAt = clonePtr(u.HiredAt)
		return nil
	})
}

func (r *UserRepo) List(_ context.Context, limit, offset int) ([]*entity.StaffUser, int, error) {
	rows := r.t.find(nil, func(a, b entity.StaffUser) bool { return a.ID < b.ID })
	rows, total := page(rows, limit, offset)
	return ptrs(rows), total, nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	return r.t.remove(id)
}
