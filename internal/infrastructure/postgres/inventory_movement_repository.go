package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

const movementColumns = `id, product_id, type, quantity, unit_cost, total_cost, sale_id, reason, created_by, created_at`

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	var createdBy *int64
	if m.CreatedBy != 0 {
		createdBy = &m.CreatedBy
	}
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory_movements (product_id, type, quantity, unit_cost, total_cost, sale_id, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		m.ProductID, m.Type, m.Quantity, m.UnitCost, m.TotalCost, m.SaleID, m.Reason, createdBy, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// ListByProduct lista movimientos de un producto en un rango de fechas.
func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, productID int64, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, int, error) {
	var w filter
	w.add("product_id = ?", productID)
	if from != nil {
		w.add("created_at >= ?", *from)
	}
	if to != nil {
		w.add("created_at <= ?", *to)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_movements`+w.where(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}
	suffix, args := w.page(limit, offset)
	rows, err := r.q.Query(ctx,
		`SELECT `+movementColumns+` FROM inventory_movements`+w.where()+` ORDER BY created_at DESC, id DESC`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list by product: %w", err)
	}
	defer rows.Close()
	list, err := collectMovements(rows)
	return list, total, err
}

func collectMovements(rows pgx.Rows) ([]*entity.InventoryMovement, error) {
	list := make([]*entity.InventoryMovement, 0)
	for rows.Next() {
		var m entity.InventoryMovement
		var createdBy *int64
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.UnitCost, &m.TotalCost,
			&m.SaleID, &m.Reason, &createdBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
