package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// NotificationUseCase feed de notificaciones del encabezado. Las alertas de stock se
// derivan de los productos con stock bajo cada vez que se consulta el feed.
type NotificationUseCase struct {
	repo     repository.NotificationRepository
	products repository.ProductRepository
	settings repository.SettingsRepository
	now      func() time.Time
}

func NewNotificationUseCase(repo repository.NotificationRepository, products repository.ProductRepository, settings repository.SettingsRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, products: products, settings: settings, now: time.Now}
}

// List sincroniza las alertas de stock y devuelve el feed, más recientes primero.
func (uc *NotificationUseCase) List(ctx context.Context, unreadOnly bool, limit, offset int) (*dto.NotificationListResponse, error) {
	if _, err := uc.SyncStockAlerts(ctx); err != nil {
		return nil, err
	}
	limit, offset = normalizePage(limit, offset)
	list, total, err := uc.repo.List(ctx, repository.NotificationFilter{UnreadOnly: unreadOnly, Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	unread, err := uc.repo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{
		Items:  items,
		Unread: unread,
		Page:   dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// SyncStockAlerts crea una alerta por cada producto con stock bajo que no tenga una
// pendiente. Una alerta ya leída se repite solo si el stock cambió después de emitirla.
// No hace nada si la tienda desactivó las alertas de stock bajo.
func (uc *NotificationUseCase) SyncStockAlerts(ctx context.Context) (int, error) {
	s, err := uc.settings.Get(ctx)
	if err != nil {
		return 0, err
	}
	if s != nil && !s.Notifications.LowStockAlerts {
		return 0, nil
	}
	low, _, err := uc.products.List(ctx, repository.ProductFilter{LowStock: true})
	if err != nil {
		return 0, err
	}
	created := 0
	for _, p := range low {
		last, err := uc.repo.LatestStockAlert(ctx, p.ID)
		if err != nil {
			return created, err
		}
		if last != nil && (!last.Read || !last.CreatedAt.Before(p.UpdatedAt)) {
			continue
		}
		id := p.ID
		n := stockAlert(p)
		n.ProductID = &id
		n.CreatedAt = uc.now()
		if err := uc.repo.Create(ctx, n); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				continue
			}
			return created, fmt.Errorf("alerta de stock %s: %w", p.SKU, err)
		}
		created++
	}
	return created, nil
}

func stockAlert(p *entity.Product) *entity.Notification {
	if p.Stock == 0 {
		return &entity.Notification{
			Type:    entity.NotificationStock,
			Title:   "Producto agotado",
			Message: fmt.Sprintf("%s no tiene unidades en stock", p.Name),
		}
	}
	return &entity.Notification{
		Type:    entity.NotificationStock,
		Title:   "Stock bajo",
		Message: fmt.Sprintf("%s está con stock bajo (%d unidades, mínimo %d)", p.Name, p.Stock, p.MinStock),
	}
}

// MarkRead marca una notificación como leída. nil si no existe.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id int64) (*dto.NotificationResponse, error) {
	if err := uc.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil || n == nil {
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// MarkAllRead marca todo el feed como leído.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context) (*dto.MarkAllReadResponse, error) {
	updated, err := uc.repo.MarkAllRead(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := uc.repo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.MarkAllReadResponse{Updated: updated, Unread: unread}, nil
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		ProductID: n.ProductID,
		Date:      n.CreatedAt,
		Read:      n.Read,
	}
}
