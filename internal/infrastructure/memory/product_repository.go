package memory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	t *table[entity.Product]
	cascade
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{t: newTable(func(p entity.Product) entity.Product {
		p.SupplierID = clonePtr(p.SupplierID)
		return p
	})}
}

// Create persiste un producto nuevo. SKU y código de barras son únicos.
func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	v, err := r.t.insertUnique(*p, func(v *entity.Product, id int64) { v.ID = id }, productID, sameCode(p.SKU, p.Barcode))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func productID(v entity.Product) int64 { return v.ID }

// sameCode detecta otra fila con el mismo SKU (sin distinguir mayúsculas) o código de barras.
func sameCode(sku, barcode string) func(entity.Product) bool {
	return func(v entity.Product) bool {
		return (sku != "" && strings.EqualFold(v.SKU, sku)) || (barcode != "" && v.Barcode == barcode)
	}
}

// GetByID obtiene un producto por ID (nil si no existe).
func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByBarcode busca por código de barras exacto.
// GetByIDForUpdate equivale a GetByID: el TxRunner en memoria ya serializa las transacciones.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	return r.first(func(v entity.Product) bool { return barcode != "" && v.Barcode == barcode }), nil
}

// GetBySKU busca por SKU sin distinguir mayúsculas.
func (r *ProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return r.first(func(v entity.Product) bool { return strings.EqualFold(v.SKU, sku) }), nil
}

func (r *ProductRepo) first(keep func(entity.Product) bool) *entity.Product {
	rows := r.t.find(keep, func(a, b entity.Product) bool { return a.ID < b.ID })
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

// Update reemplaza los datos editables. Stock y costo no se tocan (ver AdjustStock y
// UpdateCost).
func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.t.updateUnique(p.ID, productID, sameCode(p.SKU, p.Barcode), func(cur *entity.Product) error {
		stock, cost := cur.Stock, cur.Cost
		*cur = *p
		cur.SupplierID = clonePtr(p.SupplierID)
		cur.Stock = stock
		cur.Cost = cost
		return nil
	})
}

// AdjustStock suma delta al stock de forma atómica.
func (r *ProductRepo) AdjustStock(_ context.Context, id int64, delta int) error {
	return r.t.update(id, func(cur *entity.Product) error {
		if cur.Stock+delta < 0 {
			return domain.ErrInsufficientStock
		}
		cur.Stock += delta
		cur.UpdatedAt = time.Now()
		return nil
	})
}

// UpdateCost fija el costo promedio.
func (r *ProductRepo) UpdateCost(_ context.Context, id int64, cost decimal.Decimal) error {
	return r.t.update(id, func(cur *entity.Product) error {
		cur.Cost = cost
		return nil
	})
}

// List filtra y pagina productos ordenados por nombre.
func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	search := strings.ToLower(f.Search)
	rows := r.t.find(func(v entity.Product) bool {
		if search != "" && !strings.Contains(strings.ToLower(v.Name), search) {
			return false
		}
		if f.Category != "" && !strings.EqualFold(v.Category, f.Category) {
			return false
		}
		if f.LowStock && !v.LowStock() {
			return false
		}
		return true
	}, func(a, b entity.Product) bool { return a.Name < b.Name })
	rows, total := page(rows, f.Limit, f.Offset)
	return ptrs(rows), total, nil
}

// Delete elimina un producto y, en cascada, su kardex.
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	if err := r.t.remove(id); err != nil {
		return err
	}
	r.deleted(id)
	return nil
}

// clearSupplier desvincula los productos de un proveedor eliminado.
func (r *ProductRepo) clearSupplier(supplierID int64) {
	r.t.updateWhere(func(v entity.Product) bool {
		return v.SupplierID != nil && *v.SupplierID == supplierID
	}, func(v *entity.Product) { v.SupplierID = nil })
}
