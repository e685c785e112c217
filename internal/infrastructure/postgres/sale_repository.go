package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, cashier_id, cashier_name, customer_name, total, payment_method, created_at`

// SaleRepo ventas y sus líneas sobre PostgreSQL. Create debe correr dentro de una tx
// (ver TxRunner.Run) para que cabecera y líneas queden juntas.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera y luego cada línea.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO sales (cashier_id, cashier_name, customer_name, total, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		s.CashierID, s.CashierName, s.CustomerName, s.Total, s.PaymentMethod, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for i, it := range s.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (sale_id, line, product_id, name, category, quantity, unit_price, unit_cost)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, i+1, it.ProductID, it.Name, it.Category, it.Quantity, it.UnitPrice, it.UnitCost,
		)
		if err != nil {
			return fmt.Errorf("insert sale item %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).Scan(
		&s.ID, &s.CashierID, &s.CashierName, &s.CustomerName, &s.Total, &s.PaymentMethod, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	sales := []*entity.Sale{&s}
	if err := r.loadItems(ctx, sales); err != nil {
		return nil, err
	}
	return &s, nil
}

// List más recientes primero, con filtro de rango y cajero.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, int, error) {
	var w filter
	if !f.From.IsZero() {
		w.add("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		w.add("created_at <= ?", f.To)
	}
	if f.CashierID > 0 {
		w.add("cashier_id = ?", f.CashierID)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales`+w.where(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}
	suffix, args := w.page(f.Limit, f.Offset)
	sales, err := r.query(ctx, `SELECT `+saleColumns+` FROM sales`+w.where()+` ORDER BY created_at DESC, id DESC`+suffix, args...)
	if err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// ListBetween ventas con created_at en [from, to], con sus líneas.
func (r *SaleRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error) {
	return r.query(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at DESC, id DESC`,
		from, to,
	)
}

func (r *SaleRepo) query(ctx context.Context, sql string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	sales := make([]*entity.Sale, 0)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CashierID, &s.CashierName, &s.CustomerName, &s.Total, &s.PaymentMethod, &s.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	if err := r.loadItems(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// loadItems trae las líneas de todas las ventas en una sola consulta.
func (r *SaleRepo) loadItems(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]int64, len(sales))
	byID := make(map[int64]*entity.Sale, len(sales))
	for i, s := range sales {
		ids[i] = s.ID
		byID[s.ID] = s
	}
	rows, err := r.q.Query(ctx, `
		SELECT sale_id, product_id, name, category, quantity, unit_price, unit_cost
		FROM sale_items WHERE sale_id = ANY($1) ORDER BY sale_id, line`, ids)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var saleID int64
		var it entity.SaleItem
		if err := rows.Scan(&saleID, &it.ProductID, &it.Name, &it.Category, &it.Quantity, &it.UnitPrice, &it.UnitCost); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		if s, ok := byID[saleID]; ok {
			s.Items = append(s.Items, it)
		}
	}
	return rows.Err()
}
