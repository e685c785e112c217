package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	birth, err := parseOptionalDate("birth_date", in.BirthDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Customer{CreatedAt: now}
	applyCustomer(c, in, birth, now)
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCustomerResponse(c), nil
}

// Update reemplaza los datos del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	birth, err := parseOptionalDate("birth_date", in.BirthDate)
	if err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	applyCustomer(c, in, birth, time.Now())
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List lista clientes filtrando por nombre.
func (uc *CustomerUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.CustomerListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, total, err := uc.repo.List(ctx, strings.TrimSpace(search), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina un cliente.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func applyCustomer(c *entity.Customer, in dto.CustomerRequest, birth *time.Time, now time.Time) {
	c.Name = strings.TrimSpace(in.Name)
	c.Phone = strings.TrimSpace(in.Phone)
	c.Email = strings.TrimSpace(in.Email)
	c.Address = entity.Address{
		Street:     in.Address.Street,
		Number:     in.Address.Number,
		Complement: in.Address.Complement,
		District:   in.Address.District,
		City:       in.Address.City,
	}
	c.BirthDate = birth
	c.CompanyName = strings.TrimSpace(in.CompanyName)
	c.TradeName = strings.TrimSpace(in.TradeName)
	c.Notes = strings.TrimSpace(in.Notes)
	c.UpdatedAt = now
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
		Email: c.Email,
		Address: dto.AddressDTO{
			Street:     c.Address.Street,
			Number:     c.Address.Number,
			Complement: c.Address.Complement,
			District:   c.Address.District,
			City:       c.Address.City,
		},
		BirthDate:   formatOptionalDate(c.BirthDate),
		CompanyName: c.CompanyName,
		TradeName:   c.TradeName,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
