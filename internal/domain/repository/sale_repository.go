package repository

import (
	"context"
	"time"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// SaleFilter criterios de listado de ventas. Cero = sin filtro.
type SaleFilter struct {
	From      time.Time
	To        time.Time
	CashierID int64
	Limit     int
	Offset    int
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context, f SaleFilter) ([]*entity.Sale, int, error)
	// ListBetween ventas con fecha en [from, to] con sus líneas, más recientes primero.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Sale, error)
}
