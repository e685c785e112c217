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

// PetUseCase casos de uso para mascotas. Toda mascota pertenece a un cliente existente.
type PetUseCase struct {
	repo      repository.PetRepository
	customers repository.CustomerRepository
}

// NewPetUseCase construye el caso de uso.
func NewPetUseCase(repo repository.PetRepository, customers repository.CustomerRepository) *PetUseCase {
	return &PetUseCase{repo: repo, customers: customers}
}

// Create registra una mascota.
func (uc *PetUseCase) Create(ctx context.Context, in dto.PetRequest) (*dto.PetResponse, error) {
	if err := uc.checkCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Pet{CreatedAt: now}
	applyPet(p, in, now)
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPetResponse(p), nil
}

// GetByID obtiene una mascota por ID.
func (uc *PetUseCase) GetByID(ctx context.Context, id int64) (*dto.PetResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPetResponse(p), nil
}

// Update reemplaza los datos de la mascota.
func (uc *PetUseCase) Update(ctx context.Context, id int64, in dto.PetRequest) (*dto.PetResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.CustomerID != p.CustomerID {
		if err := uc.checkCustomer(ctx, in.CustomerID); err != nil {
			return nil, err
		}
	}
	applyPet(p, in, time.Now())
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPetResponse(p), nil
}

// List lista mascotas; customerID > 0 filtra por dueño.
func (uc *PetUseCase) List(ctx context.Context, customerID int64, limit, offset int) (*dto.PetListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, total, err := uc.repo.List(ctx, customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PetResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPetResponse(p))
	}
	return &dto.PetListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina una mascota.
func (uc *PetUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *PetUseCase) checkCustomer(ctx context.Context, id int64) error {
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%w: cliente %d no existe", domain.ErrInvalidInput, id)
	}
	return nil
}

func applyPet(p *entity.Pet, in dto.PetRequest, now time.Time) {
	p.Name = strings.TrimSpace(in.Name)
	p.Species = strings.TrimSpace(in.Species)
	p.Breed = strings.TrimSpace(in.Breed)
	p.Age = in.Age
	p.Sex = in.Sex
	p.CustomerID = in.CustomerID
	p.Notes = in.Notes
	p.UpdatedAt = now
}

func toPetResponse(p *entity.Pet) *dto.PetResponse {
	return &dto.PetResponse{
		ID:         p.ID,
		Name:       p.Name,
		Species:    p.Species,
		Breed:      p.Breed,
		Age:        p.Age,
		Sex:        p.Sex,
		CustomerID: p.CustomerID,
		Notes:      p.Notes,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
