package entity

import "time"

// Estados de un usuario del personal.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User identidad autenticada de una sesión (sin password ni username).
type User struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
}

// StaffUser ficha de un miembro del personal administrada desde el módulo de usuarios.
type StaffUser struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	Username  string
	Role      Role
	Status    string // active, inactive
	Position  string
	HiredAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
