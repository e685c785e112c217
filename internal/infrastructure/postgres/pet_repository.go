package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.PetRepository = (*PetRepo)(nil)

const petColumns = `id, name, species, breed, age, sex, customer_id, notes, created_at, updated_at`

// PetRepo mascotas sobre PostgreSQL.
type PetRepo struct {
	q Querier
}

func NewPetRepository(q Querier) *PetRepo {
	return &PetRepo{q: q}
}

func scanPet(row pgx.Row) (*entity.Pet, error) {
	var p entity.Pet
	if err := row.Scan(&p.ID, &p.Name, &p.Species, &p.Breed, &p.Age, &p.Sex, &p.CustomerID, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PetRepo) Create(ctx context.Context, p *entity.Pet) error {
	query := `
		INSERT INTO pets (name, species, breed, age, sex, customer_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Species, p.Breed, p.Age, p.Sex, p.CustomerID, p.Notes, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("cliente %d: %w", p.CustomerID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id int64) (*entity.Pet, error) {
	p, err := scanPet(r.q.QueryRow(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pet: %w", err)
	}
	return p, nil
}

func (r *PetRepo) Update(ctx context.Context, p *entity.Pet) error {
	query := `
		UPDATE pets SET name = $2, species = $3, breed = $4, age = $5, sex = $6, customer_id = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Species, p.Breed, p.Age, p.Sex, p.CustomerID, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("cliente %d: %w", p.CustomerID, domain.ErrNotFound)
		}
		return fmt.Errorf("update pet: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List mascotas, opcionalmente de un solo cliente (customerID > 0).
func (r *PetRepo) List(ctx context.Context, customerID int64, limit, offset int) ([]*entity.Pet, int, error) {
	var w filter
	if customerID > 0 {
		w.add("customer_id = ?", customerID)
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM pets`+w.where(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pets: %w", err)
	}
	suffix, args := w.page(limit, offset)
	rows, err := r.q.Query(ctx, `SELECT `+petColumns+` FROM pets`+w.where()+` ORDER BY name`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan pet: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

func (r *PetRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PetRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM pets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pets: %w", err)
	}
	return n, nil
}
