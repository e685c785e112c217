package entity

import "time"

// AppointmentStatus estado de una cita.
type AppointmentStatus string

// Estados de cita.
const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Valid informa si s es un estado conocido.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// CanTransition informa si se permite pasar de s a next.
// completed y cancelled son terminales.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	switch s {
	case AppointmentPending:
		return next == AppointmentConfirmed || next == AppointmentCancelled
	case AppointmentConfirmed:
		return next == AppointmentCompleted || next == AppointmentCancelled
	}
	return false
}

// Appointment cita de servicio (baño, peluquería, consulta).
type Appointment struct {
	ID           int64
	Date         time.Time // día, sin hora
	Time         string    // HH:MM
	Service      string
	PetID        *int64
	PetName      string
	CustomerName string
	Status       AppointmentStatus
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
