package entity

import "time"

// StoreSettings configuración de la tienda (registro único).
type StoreSettings struct {
	StoreName     string
	Address       string
	Phone         string
	Email         string
	TaxID         string
	Notifications NotificationSettings
	System        SystemSettings
	UpdatedAt     time.Time
}

// NotificationSettings alertas habilitadas.
type NotificationSettings struct {
	SalesEmail     bool `json:"salesEmail"`
	StockEmail     bool `json:"stockEmail"`
	CustomerSMS    bool `json:"customerSms"`
	LowStockAlerts bool `json:"lowStockAlerts"`
}

// SystemSettings preferencias de presentación.
type SystemSettings struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
}
