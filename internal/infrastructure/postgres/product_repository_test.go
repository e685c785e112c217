package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var productCols = []string{"id", "name", "brand", "category", "sku", "barcode", "price", "cost", "stock", "min_stock", "supplier_id", "created_at", "updated_at"}

func strPtr(s string) *string { return &s }

func TestProductRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProductRepository(mock)
	p := &entity.Product{
		Name: "Collar Antipulgas", SKU: "SE-001", Barcode: "7891234567892",
		Price: decimal.RequireFromString("45.00"), Cost: decimal.RequireFromString("28.00"), Stock: 67, MinStock: 30,
	}

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(p.Name, p.Brand, p.Category, p.SKU, pgxmock.AnyArg(), p.Price, p.Cost, p.Stock, p.MinStock, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, int64(7), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_CreateDuplicado(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO products").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err = NewProductRepository(mock).Create(context.Background(), &entity.Product{SKU: "X"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_GetByIDNoExiste(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows(productCols))

	p, err := NewProductRepository(mock).GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_GetByIDForUpdateBloqueaFila(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows(productCols).AddRow(
			int64(4), "Juguete Mordedor", "PetFun", "Juguetes", "BR-001", strPtr("7891234567893"),
			decimal.RequireFromString("29.90"), decimal.RequireFromString("15.00"), 89, 20, (*int64)(nil), now, now))
	mock.ExpectExec("UPDATE products SET stock").WithArgs(int64(4), 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	err = NewTxRunner(mock).Run(context.Background(), func(p repository.ProductRepository, _ repository.SaleRepository, _ repository.InventoryMovementRepository) error {
		got, err := p.GetByIDForUpdate(context.Background(), 4)
		if err != nil {
			return err
		}
		require.NotNil(t, got)
		assert.Equal(t, 89, got.Stock)
		return p.AdjustStock(context.Background(), got.ID, 5)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_GetByBarcode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	supplier := int64(2)
	mock.ExpectQuery("SELECT (.+) FROM products WHERE barcode").
		WithArgs("7891234567890").
		WillReturnRows(pgxmock.NewRows(productCols).AddRow(
			int64(1), "Alimento Premium Perros 15kg", "Royal Canin", "Alimento", "RC-001", strPtr("7891234567890"),
			decimal.RequireFromString("189.90"), decimal.RequireFromString("120.00"), 45, 20, &supplier, now, now,
		))

	p, err := NewProductRepository(mock).GetByBarcode(context.Background(), "7891234567890")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "RC-001", p.SKU)
	assert.Equal(t, "7891234567890", p.Barcode)
	assert.Equal(t, 45, p.Stock)
	require.NotNil(t, p.SupplierID)
	assert.Equal(t, int64(2), *p.SupplierID)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("189.9")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_AdjustStock(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(m pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "ok",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectExec("UPDATE products SET stock").WithArgs(int64(1), -2).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "stock negativo",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectExec("UPDATE products SET stock").WithArgs(int64(1), -2).
					WillReturnError(&pgconn.PgError{Code: "23514"})
			},
			wantErr: domain.ErrInsufficientStock,
		},
		{
			name: "no existe",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectExec("UPDATE products SET stock").WithArgs(int64(1), -2).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tc.setup(mock)

			err = NewProductRepository(mock).AdjustStock(context.Background(), 1, -2)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProductRepo_ListStockBajo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT COUNT(.+) FROM products WHERE name ILIKE (.+) AND stock <= min_stock").
		WithArgs("%comedero%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM products WHERE (.+) ORDER BY name LIMIT").
		WithArgs("%comedero%", 20, 0).
		WillReturnRows(pgxmock.NewRows(productCols).AddRow(
			int64(7), "Comedero Automático", "PetSafe", "Accesorios", "PS-001", strPtr("7891234567896"),
			decimal.RequireFromString("199.00"), decimal.RequireFromString("130.00"), 8, 10, (*int64)(nil), now, now,
		))

	list, total, err := NewProductRepository(mock).List(context.Background(), repository.ProductFilter{
		Search: "comedero", LowStock: true, Limit: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.True(t, list[0].LowStock())
	assert.Nil(t, list[0].SupplierID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
