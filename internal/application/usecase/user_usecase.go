package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para el personal. Email y username son únicos.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create da de alta un usuario. Status por defecto active.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserRequest) (*dto.UserResponse, error) {
	if err := uc.checkUnique(ctx, 0, in.Email, in.Username); err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.StaffUser{CreatedAt: now}
	if err := applyUser(u, in, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return entityToUserResponse(u), nil
}

// Update reemplaza los datos del usuario.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if err := uc.checkUnique(ctx, id, in.Email, in.Username); err != nil {
		return nil, err
	}
	if err := applyUser(u, in, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return entityToUserResponse(u), nil
}

// List lista el personal por orden de alta.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) (*dto.UserListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, total, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina un usuario. actorID no puede borrarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id int64) error {
	if actorID != 0 && actorID == id {
		return fmt.Errorf("%w: no se puede eliminar el propio usuario", domain.ErrConflict)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *UserUseCase) checkUnique(ctx context.Context, selfID int64, email, username string) error {
	u, err := uc.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if u != nil && u.ID != selfID {
		return fmt.Errorf("%w: email %s", domain.ErrDuplicate, email)
	}
	u, err = uc.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return err
	}
	if u != nil && u.ID != selfID {
		return fmt.Errorf("%w: username %s", domain.ErrDuplicate, username)
	}
	return nil
}

func applyUser(u *entity.StaffUser, in dto.UserRequest, now time.Time) error {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, in.Role)
	}
	status := in.Status
	if status == "" {
		status = entity.UserStatusActive
	}
	if status != entity.UserStatusActive && status != entity.UserStatusInactive {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, in.Status)
	}
	hired, err := parseOptionalDate("hired_at", in.HiredAt)
	if err != nil {
		return err
	}
	u.Name = strings.TrimSpace(in.Name)
	u.Phone = strings.TrimSpace(in.Phone)
	u.Email = strings.TrimSpace(in.Email)
	u.Username = strings.TrimSpace(in.Username)
	u.Role = role
	u.Status = status
	u.Position = strings.TrimSpace(in.Position)
	u.HiredAt = hired
	u.UpdatedAt = now
	return nil
}

func entityToUserResponse(u *entity.StaffUser) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		Username:  u.Username,
		Role:      string(u.Role),
		RoleLabel: u.Role.Label(),
		Status:    u.Status,
		Position:  u.Position,
		HiredAt:   formatOptionalDate(u.HiredAt),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
