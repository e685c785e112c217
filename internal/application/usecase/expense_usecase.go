package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// ExpenseUseCase gastos operativos y sus totales por categoría.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra un gasto. Amount debe ser mayor que cero.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	now := time.Now()
	e := &entity.Expense{CreatedAt: now}
	if err := applyExpense(e, in, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// GetByID obtiene un gasto por ID.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id int64) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toExpenseResponse(e), nil
}

// Update reemplaza los datos del gasto.
func (uc *ExpenseUseCase) Update(ctx context.Context, id int64, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if err := applyExpense(e, in, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// List lista gastos, los más recientes primero.
func (uc *ExpenseUseCase) List(ctx context.Context, limit, offset int) (*dto.ExpenseListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, total, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// Summary totales por categoría entre from y to (inclusive). Sin fechas: mes en curso.
func (uc *ExpenseUseCase) Summary(ctx context.Context, from, to string) (*dto.ExpenseSummaryResponse, error) {
	start, end, err := DateRange(from, to, time.Now())
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	total, byCat := SumByCategory(list)
	return &dto.ExpenseSummaryResponse{
		From:       start.Format(dto.DateLayout),
		To:         end.Format(dto.DateLayout),
		Total:      total,
		ByCategory: byCat,
	}, nil
}

// SumByCategory total general y por categoría, ordenado por total descendente.
func SumByCategory(list []*entity.Expense) (decimal.Decimal, []dto.CategoryTotalDTO) {
	total := decimal.Zero
	acc := map[string]*dto.CategoryTotalDTO{}
	for _, e := range list {
		total = total.Add(e.Amount)
		c, ok := acc[e.Category]
		if !ok {
			c = &dto.CategoryTotalDTO{Category: e.Category, Total: decimal.Zero}
			acc[e.Category] = c
		}
		c.Total = c.Total.Add(e.Amount)
		c.Count++
	}
	out := make([]dto.CategoryTotalDTO, 0, len(acc))
	for _, c := range acc {
		c.Total = c.Total.Round(2)
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return total.Round(2), out
}

// DateRange interpreta from/to (YYYY-MM-DD). Por defecto desde el día 1 del mes de now hasta
// el fin del día de now. El extremo to incluye el día completo.
func DateRange(from, to string, now time.Time) (time.Time, time.Time, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := endOfDay(now)
	f, err := parseOptionalDate("from", from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	t, err := parseOptionalDate("to", to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if f != nil {
		start = *f
	}
	if t != nil {
		end = endOfDay(*t)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from posterior a to", domain.ErrInvalidInput)
	}
	return start, end, nil
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

var expenseCategories = map[string]bool{
	entity.ExpenseRent: true, entity.ExpenseStockPurchase: true, entity.ExpenseSalaries: true,
	entity.ExpenseElectricity: true, entity.ExpenseWater: true, entity.ExpenseMarketing: true,
	entity.ExpenseMaintenance: true, entity.ExpenseOther: true,
}

func applyExpense(e *entity.Expense, in dto.ExpenseRequest, now time.Time) error {
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if !expenseCategories[in.Category] {
		return fmt.Errorf("%w: categoría %q", domain.ErrInvalidInput, in.Category)
	}
	d, err := parseOptionalDate("date", in.Date)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("%w: date es obligatorio", domain.ErrInvalidInput)
	}
	e.Description = strings.TrimSpace(in.Description)
	e.Amount = in.Amount.Round(2)
	e.Date = *d
	e.Category = in.Category
	e.UpdatedAt = now
	return nil
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format(dto.DateLayout),
		Category:    e.Category,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
