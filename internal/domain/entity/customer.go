package entity

import "time"

// Address dirección postal de un cliente.
type Address struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
}

// Customer cliente de la tienda (persona o empresa).
type Customer struct {
	ID          int64
	Name        string
	Phone       string
	Email       string
	Address     Address
	BirthDate   *time.Time
	CompanyName string // razón social, opcional
	TradeName   string // nombre comercial, opcional
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
