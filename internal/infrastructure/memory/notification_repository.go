package memory

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo feed de notificaciones en memoria.
type NotificationRepo struct {
	t *table[entity.Notification]
}

// NewNotificationRepository construye el repositorio vacío.
func NewNotificationRepository() *NotificationRepo {
	return &NotificationRepo{t: newTable(func(n entity.Notification) entity.Notification {
		n.ProductID = clonePtr(n.ProductID)
		return n
	})}
}

func (r *NotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	v, err := r.t.insertUnique(*n, func(v *entity.Notification, id int64) { v.ID = id },
		func(v entity.Notification) int64 { return v.ID }, n.SameStockAlert)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (r *NotificationRepo) GetByID(_ context.Context, id int64) (*entity.Notification, error) {
	n, ok := r.t.get(id)
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (r *NotificationRepo) LatestStockAlert(_ context.Context, productID int64) (*entity.Notification, error) {
	rows := r.t.find(func(v entity.Notification) bool {
		return v.Type == entity.NotificationStock && v.ProductID != nil && *v.ProductID == productID
	}, newestNotification)
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *NotificationRepo) List(_ context.Context, f repository.NotificationFilter) ([]*entity.Notification, int, error) {
	rows := r.t.find(func(v entity.Notification) bool {
		return !f.UnreadOnly || !v.Read
	}, newestNotification)
	rows, total := page(rows, f.Limit, f.Offset)
	return ptrs(rows), total, nil
}

func (r *NotificationRepo) CountUnread(_ context.Context) (int, error) {
	return r.t.countWhere(func(v entity.Notification) bool { return !v.Read }), nil
}

func (r *NotificationRepo) MarkRead(_ context.Context, id int64) error {
	return r.t.update(id, func(cur *entity.Notification) error {
		cur.Read = true
		return nil
	})
}

func (r *NotificationRepo) MarkAllRead(_ context.Context) (int, error) {
	return r.t.updateWhere(func(v entity.Notification) bool { return !v.Read },
		func(v *entity.Notification) { v.Read = true }), nil
}

// deleteByProduct borra las alertas de un producto eliminado.
func (r *NotificationRepo) deleteByProduct(productID int64) {
	r.t.removeWhere(func(v entity.Notification) bool {
		return v.ProductID != nil && *v.ProductID == productID
	})
}

func newestNotification(a, b entity.Notification) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
