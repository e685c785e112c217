package dto

import "time"

type NotificationsDTO struct {
	SalesEmail     bool `json:"sales_email"`
	StockEmail     bool `json:"stock_email"`
	CustomerSMS    bool `json:"customer_sms"`
	LowStockAlerts bool `json:"low_stock_alerts"`
}

type SystemDTO struct {
	Theme    string `json:"theme" validate:"required,oneof=light dark"`
	Language string `json:"language" validate:"required,max=10"`
	Currency string `json:"currency" validate:"required,len=3"`
	Timezone string `json:"timezone" validate:"required"`
}

// SettingsRequest reemplaza la configuración completa de la tienda.
type SettingsRequest struct {
	StoreName     string           `json:"store_name" validate:"required,max=200"`
	Address       string           `json:"address" validate:"max=300"`
	Phone         string           `json:"phone" validate:"max=30"`
	Email         string           `json:"email" validate:"omitempty,email"`
	TaxID         string           `json:"tax_id" validate:"max=30"`
	Notifications NotificationsDTO `json:"notifications"`
	System        SystemDTO        `json:"system"`
}

type SettingsResponse struct {
	StoreName     string           `json:"store_name"`
	Address       string           `json:"address"`
	Phone         string           `json:"phone"`
	Email         string           `json:"email"`
	TaxID         string           `json:"tax_id"`
	Notifications NotificationsDTO `json:"notifications"`
	System        SystemDTO        `json:"system"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
