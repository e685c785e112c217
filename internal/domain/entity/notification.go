package entity

import "time"

// NotificationType origen de una notificación del encabezado.
type NotificationType string

// Tipos de notificación.
const (
	NotificationStock    NotificationType = "stock"
	NotificationCustomer NotificationType = "customer"
	NotificationSystem   NotificationType = "system"
)

// Valid informa si t es un tipo conocido.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationStock, NotificationCustomer, NotificationSystem:
		return true
	}
	return false
}

// Notification aviso del feed del encabezado. Las de tipo stock llevan el producto
// que las originó; hay como mucho una sin leer por producto.
type Notification struct {
	ID        int64
	Type      NotificationType
	Title     string
	Message   string
	ProductID *int64
	Read      bool
	CreatedAt time.Time
}

// SameStockAlert informa si n y o son alertas de stock sin leer del mismo producto.
func (n Notification) SameStockAlert(o Notification) bool {
	return n.Type == NotificationStock && o.Type == NotificationStock &&
		!n.Read && !o.Read &&
		n.ProductID != nil && o.ProductID != nil && *n.ProductID == *o.ProductID
}
