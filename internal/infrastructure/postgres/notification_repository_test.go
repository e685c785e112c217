package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var notificationCols = []string{"id", "type", "title", "message", "product_id", "read", "created_at"}

func TestNotificationRepo_CreateAlertaDuplicada(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	pid := int64(5)
	mock.ExpectQuery("INSERT INTO notifications").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err = NewNotificationRepository(mock).Create(context.Background(), &entity.Notification{Type: entity.NotificationStock, ProductID: &pid})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepo_ListSoloSinLeer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	pid := int64(5)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications WHERE NOT read`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM notifications WHERE NOT read ORDER BY created_at DESC, id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(notificationCols).AddRow(int64(3), entity.NotificationStock, "Stock bajo", "Comedero Automático está con stock bajo", &pid, false, now))

	rows, total, err := NewNotificationRepository(mock).List(context.Background(), repository.NotificationFilter{UnreadOnly: true, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, entity.NotificationStock, rows[0].Type)
	require.NotNil(t, rows[0].ProductID)
	assert.Equal(t, pid, *rows[0].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepo_MarkReadYMarkAllRead(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE notifications SET read = true WHERE id").WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("UPDATE notifications SET read = true WHERE NOT read").
		WillReturnResult(pgxmock.NewResult("UPDATE", 4))

	repo := NewNotificationRepository(mock)
	assert.ErrorIs(t, repo.MarkRead(context.Background(), 9), domain.ErrNotFound)
	n, err := repo.MarkAllRead(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepo_LatestStockAlertSinAlertas(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM notifications WHERE type = 'stock' AND product_id").
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(notificationCols))

	n, err := NewNotificationRepository(mock).LatestStockAlert(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
