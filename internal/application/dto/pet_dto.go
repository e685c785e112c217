package dto

import "time"

// PetRequest alta y edición de mascota.
type PetRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Species    string `json:"species" validate:"required,max=50"`
	Breed      string `json:"breed" validate:"max=100"`
	Age        int    `json:"age" validate:"gte=0,lte=50"`
	Sex        string `json:"sex" validate:"required,oneof=male female"`
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	Notes      string `json:"notes" validate:"max=500"`
}

// PetResponse salida de una mascota.
type PetResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Species    string    `json:"species"`
	Breed      string    `json:"breed"`
	Age        int       `json:"age"`
	Sex        string    `json:"sex"`
	CustomerID int64     `json:"customer_id"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PetListResponse lista paginada de mascotas.
type PetListResponse struct {
	Items []PetResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
