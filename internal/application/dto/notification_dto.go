package dto

import "time"

// NotificationResponse aviso del feed del encabezado.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ProductID *int64    `json:"product_id,omitempty"`
	Date      time.Time `json:"date"`
	Read      bool      `json:"read"`
}

// NotificationListResponse feed paginado con el total sin leer.
type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int                    `json:"unread"`
	Page   PageResponse           `json:"page"`
}

// MarkAllReadResponse resultado de marcar todo como leído.
type MarkAllReadResponse struct {
	Updated int `json:"updated"`
	Unread  int `json:"unread"`
}
