package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/PetShop-api/internal/application/ports"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner serializa los movimientos de stock: cada Run corre bajo un lock global, así la
// validación de stock y el descuento no se intercalan con otro checkout. Si fn falla o no
// se puede asentar el kardex, los ajustes de stock ya aplicados se revierten.
type TxRunner struct {
	mu        sync.Mutex
	products  repository.ProductRepository
	sales     repository.SaleRepository
	movements repository.InventoryMovementRepository
}

// NewTxRunner construye el runner sobre los repositorios en memoria.
func NewTxRunner(products repository.ProductRepository, sales repository.SaleRepository, movements repository.InventoryMovementRepository) *TxRunner {
	return &TxRunner{products: products, sales: sales, movements: movements}
}

// Run ejecuta fn con los repositorios de producto, venta y kardex.
func (r *TxRunner) Run(ctx context.Context, fn ports.TxFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	j := &stockJournal{ProductRepository: r.products}
	m := &pendingMovements{InventoryMovementRepository: r.movements}
	if err := fn(j, r.sales, m); err != nil {
		j.rollback()
		return err
	}
	if err := m.flush(ctx); err != nil {
		j.rollback()
		return err
	}
	return nil
}

// stockJournal registra los AdjustStock aplicados para poder revertirlos.
type stockJournal struct {
	repository.ProductRepository
	applied []stockDelta
}

type stockDelta struct {
	id    int64
	delta int
}

func (j *stockJournal) AdjustStock(ctx context.Context, id int64, delta int) error {
	if err := j.ProductRepository.AdjustStock(ctx, id, delta); err != nil {
		return err
	}
	j.applied = append(j.applied, stockDelta{id: id, delta: delta})
	return nil
}

func (j *stockJournal) rollback() {
	for i := len(j.applied) - 1; i >= 0; i-- {
		d := j.applied[i]
		_ = j.ProductRepository.AdjustStock(context.Background(), d.id, -d.delta)
	}
	j.applied = nil
}

// pendingMovements retiene los asientos hasta que fn termina sin error. El id se asigna
// al confirmar, sobre el mismo puntero que recibió Create.
type pendingMovements struct {
	repository.InventoryMovementRepository
	pending []*entity.InventoryMovement
}

func (p *pendingMovements) Create(_ context.Context, m *entity.InventoryMovement) error {
	p.pending = append(p.pending, m)
	return nil
}

func (p *pendingMovements) flush(ctx context.Context) error {
	for _, m := range p.pending {
		if err := p.InventoryMovementRepository.Create(ctx, m); err != nil {
			return err
		}
	}
	p.pending = nil
	return nil
}
