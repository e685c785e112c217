package dto

import "time"

// AppointmentRequest alta y edición de cita. El estado se cambia con AppointmentStatusRequest.
type AppointmentRequest struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required,datetime=15:04"`
	Service      string `json:"service" validate:"required,max=100"`
	PetID        *int64 `json:"pet_id,omitempty"`
	PetName      string `json:"pet_name" validate:"max=100"`
	CustomerName string `json:"customer_name" validate:"required,max=200"`
	Notes        string `json:"notes" validate:"max=500"`
}

// AppointmentStatusRequest body para PATCH /api/appointments/{id}/status.
type AppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type AppointmentResponse struct {
	ID           int64     `json:"id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Service      string    `json:"service"`
	PetID        *int64    `json:"pet_id,omitempty"`
	PetName      string    `json:"pet_name"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
