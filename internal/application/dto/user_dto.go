package dto

import "time"

// UserRequest alta y edición de un miembro del personal.
type UserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"max=30"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Role     string `json:"role" validate:"required,oneof=admin employee cashier"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
	Position string `json:"position" validate:"max=100"`
	HiredAt  string `json:"hired_at" validate:"omitempty,datetime=2006-01-02"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"role_label"`
	Status    string    `json:"status"`
	Position  string    `json:"position,omitempty"`
	HiredAt   string    `json:"hired_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
