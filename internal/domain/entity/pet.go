package entity

import "time"

// Sexo de la mascota.
const (
	PetSexMale   = "male"
	PetSexFemale = "female"
)

// Pet mascota registrada, siempre asociada a un cliente.
type Pet struct {
	ID         int64
	Name       string
	Species    string
	Breed      string
	Age        int
	Sex        string
	CustomerID int64
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
