package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

var customerCols = []string{"id", "name", "phone", "email", "street", "number", "complement", "district", "city", "birth_date", "company_name", "trade_name", "notes", "created_at", "updated_at"}

func TestCustomerRepo_CreateGuardaNotas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	c := &entity.Customer{Name: "Ana Costa", Phone: "(13) 99999-0000", Notes: "Cliente mayorista", CreatedAt: now, UpdatedAt: now}
	mock.ExpectQuery("INSERT INTO customers (.+) notes").
		WithArgs(c.Name, c.Phone, "", "", "", "", "", "", pgxmock.AnyArg(), "", "", "Cliente mayorista", now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))

	require.NoError(t, NewCustomerRepository(mock).Create(context.Background(), c))
	assert.Equal(t, int64(4), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepo_GetByIDLeeNotas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM customers WHERE id").
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows(customerCols).AddRow(
			int64(4), "Ana Costa", "", "", "Rua A", "10", "", "", "Santos", (*time.Time)(nil), "", "", "Cliente mayorista", now, now))

	c, err := NewCustomerRepository(mock).GetByID(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Cliente mayorista", c.Notes)
	assert.Equal(t, "Santos", c.Address.City)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepo_UpdateNoExiste(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE customers SET (.+) notes = \\$13").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = NewCustomerRepository(mock).Update(context.Background(), &entity.Customer{ID: 9, Notes: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
