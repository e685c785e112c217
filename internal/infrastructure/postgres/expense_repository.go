package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `id, description, amount, date, category, created_at, updated_at`

// ExpenseRepo gastos sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	if err := row.Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &e.Category, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO expenses (description, amount, date, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		e.Description, e.Amount, e.Date, e.Category, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) GetByID(ctx context.Context, id int64) (*entity.Expense, error) {
	e, err := scanExpense(r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return e, nil
}

func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE expenses SET description = $2, amount = $3, date = $4, category = $5, updated_at = $6
		WHERE id = $1`,
		e.ID, e.Description, e.Amount, e.Date, e.Category, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBetween gastos con fecha dentro de [from, to].
func (r *ExpenseRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE date >= $1::date AND date <= $2::date ORDER BY date, id`,
		from.Format("2006-01-02"), to.Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("list expenses between: %w", err)
	}
	defer rows.Close()
	return collectExpenses(rows)
}

func (r *ExpenseRepo) List(ctx context.Context, limit, offset int) ([]*entity.Expense, int, error) {
	var w filter
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count expenses: %w", err)
	}
	suffix, args := w.page(limit, offset)
	rows, err := r.q.Query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC, id DESC`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	list, err := collectExpenses(rows)
	return list, total, err
}

func collectExpenses(rows pgx.Rows) ([]*entity.Expense, error) {
	list := make([]*entity.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *ExpenseRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
