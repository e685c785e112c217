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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, phone, email, street, number, complement, district, city, birth_date, company_name, trade_name, notes, created_at, updated_at`

// CustomerRepo clientes de la tienda sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address.Street, &c.Address.Number,
		&c.Address.Complement, &c.Address.District, &c.Address.City, &c.BirthDate,
		&c.CompanyName, &c.TradeName, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserta el cliente y completa su ID.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (name, phone, email, street, number, complement, district, city, birth_date, company_name, trade_name, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Name, c.Phone, c.Email, c.Address.Street, c.Address.Number, c.Address.Complement,
		c.Address.District, c.Address.City, c.BirthDate, c.CompanyName, c.TradeName, c.Notes, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Update reemplaza los datos del cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, phone = $3, email = $4, street = $5, number = $6, complement = $7,
			district = $8, city = $9, birth_date = $10, company_name = $11, trade_name = $12, notes = $13, updated_at = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.Address.Street, c.Address.Number, c.Address.Complement,
		c.Address.District, c.Address.City, c.BirthDate, c.CompanyName, c.TradeName, c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List busca por nombre, email o teléfono.
func (r *CustomerRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Customer, int, error) {
	var w filter
	if search != "" {
		w.add("(name ILIKE ? OR email ILIKE ? OR phone LIKE ?)", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`+w.where(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}
	suffix, args := w.page(limit, offset)
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers`+w.where()+` ORDER BY name`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// Delete elimina el cliente; sus mascotas se borran en cascada.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
