package repository

import (
	"context"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// NotificationFilter criterios de listado del feed.
type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// NotificationRepository define el puerto de persistencia para Notification (DIP).
type NotificationRepository interface {
	// Create inserta la notificación. ErrDuplicate si ya hay una alerta de stock sin leer del producto.
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id int64) (*entity.Notification, error)
	// LatestStockAlert última alerta de stock del producto, leída o no. nil si nunca tuvo.
	LatestStockAlert(ctx context.Context, productID int64) (*entity.Notification, error)
	// List más recientes primero.
	List(ctx context.Context, f NotificationFilter) ([]*entity.Notification, int, error)
	CountUnread(ctx context.Context) (int, error)
	// MarkRead marca una notificación como leída. ErrNotFound si no existe.
	MarkRead(ctx context.Context, id int64) error
	// MarkAllRead marca todas como leídas y devuelve cuántas cambiaron.
	MarkAllRead(ctx context.Context) (int, error)
}
