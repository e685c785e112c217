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

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = `id, type, title, message, product_id, read, created_at`

// NotificationRepo feed de notificaciones sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	if err := row.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.ProductID, &n.Read, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserta la notificación. El índice parcial ux_notifications_stock_unread
// rechaza una segunda alerta de stock sin leer del mismo producto.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO notifications (type, title, message, product_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		n.Type, n.Title, n.Message, n.ProductID, n.Read, n.CreatedAt,
	).Scan(&n.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepo) GetByID(ctx context.Context, id int64) (*entity.Notification, error) {
	n, err := scanNotification(r.q.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

func (r *NotificationRepo) LatestStockAlert(ctx context.Context, productID int64) (*entity.Notification, error) {
	n, err := scanNotification(r.q.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications
		WHERE type = 'stock' AND product_id = $1
		ORDER BY created_at DESC, id DESC LIMIT 1`, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest stock alert: %w", err)
	}
	return n, nil
}

func (r *NotificationRepo) List(ctx context.Context, f repository.NotificationFilter) ([]*entity.Notification, int, error) {
	var w filter
	if f.UnreadOnly {
		w.add("NOT read")
	}
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications`+w.where(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}
	suffix, args := w.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, `SELECT `+notificationColumns+` FROM notifications`+w.where()+` ORDER BY created_at DESC, id DESC`+suffix, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}
	return list, total, rows.Err()
}

func (r *NotificationRepo) CountUnread(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE NOT read`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context) (int, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE notifications SET read = true WHERE NOT read`)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}
