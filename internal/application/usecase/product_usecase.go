package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Cost y Stock se manejan vía entradas y ajustes.
type ProductUseCase struct {
	repo      repository.ProductRepository
	suppliers repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, suppliers repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, suppliers: suppliers}
}

// Create crea un nuevo producto. SKU y código de barras deben ser únicos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateMoney("price", in.Price); err != nil {
		return nil, err
	}
	if err := validateMoney("cost", in.Cost); err != nil {
		return nil, err
	}
	sku := strings.TrimSpace(in.SKU)
	barcode := strings.TrimSpace(in.Barcode)
	existing, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: sku %s", domain.ErrDuplicate, sku)
	}
	if barcode != "" {
		existing, err = uc.repo.GetByBarcode(ctx, barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: código de barras %s", domain.ErrDuplicate, barcode)
		}
	}
	if err := uc.checkSupplier(ctx, in.SupplierID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		Name:       strings.TrimSpace(in.Name),
		Brand:      strings.TrimSpace(in.Brand),
		Category:   strings.TrimSpace(in.Category),
		SKU:        sku,
		Barcode:    barcode,
		Price:      in.Price.Round(2),
		Cost:       in.Cost.Round(2),
		Stock:      in.Stock,
		MinStock:   in.MinStock,
		SupplierID: in.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetByBarcode busca un producto por su código de barras (lector del punto de venta).
func (uc *ProductUseCase) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, fmt.Errorf("%w: código de barras vacío", domain.ErrInvalidInput)
	}
	product, err := uc.repo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar Cost ni Stock.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Brand != nil {
		product.Brand = strings.TrimSpace(*in.Brand)
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.SKU != nil {
		product.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Barcode != nil {
		product.Barcode = strings.TrimSpace(*in.Barcode)
	}
	if in.Price != nil {
		if err := validateMoney("price", *in.Price); err != nil {
			return nil, err
		}
		product.Price = in.Price.Round(2)
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.SupplierID != nil {
		if err := uc.checkSupplier(ctx, in.SupplierID); err != nil {
			return nil, err
		}
		product.SupplierID = in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con búsqueda por nombre, categoría y filtro de stock bajo.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	limit, offset := normalizePage(in.Limit, in.Offset)
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{
		Search:   strings.TrimSpace(in.Search),
		Category: strings.TrimSpace(in.Category),
		LowStock: in.LowStock,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// LowStock productos con stock <= mínimo.
func (uc *ProductUseCase) LowStock(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	return uc.List(ctx, dto.ProductFilterRequest{LowStock: true, PageRequest: dto.PageRequest{Limit: limit, Offset: offset}})
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) checkSupplier(ctx context.Context, id *int64) error {
	if id == nil || uc.suppliers == nil {
		return nil
	}
	s, err := uc.suppliers.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("%w: proveedor %d no existe", domain.ErrInvalidInput, *id)
	}
	return nil
}

// validateMoney rechaza montos negativos.
func validateMoney(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, field)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Brand:      p.Brand,
		Category:   p.Category,
		SKU:        p.SKU,
		Barcode:    p.Barcode,
		Price:      p.Price,
		Cost:       p.Cost,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		SupplierID: p.SupplierID,
		LowStock:   p.LowStock(),
		UnitProfit: p.UnitProfit().Round(2),
		MarginPct:  p.MarginPct().Round(2),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToProductResponse expone el mapeo para otros casos de uso (dashboard, reposición).
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	return toProductResponse(p)
}
