package dto

import "github.com/jhoicas/PetShop-api/internal/domain/entity"

// LoginRequest credenciales del formulario de acceso. Identifier acepta username, email o nombre.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=200"`
	Password   string `json:"password" validate:"required,max=200"`
}

// LoginResponse token de la sesión y su estado persistido.
type LoginResponse struct {
	Token   string         `json:"token"`
	Session entity.Session `json:"session"`
}

// MenuEntryDTO entrada del menú lateral.
type MenuEntryDTO struct {
	View  string `json:"view"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// MenuResponse menú visible para el rol de la sesión.
type MenuResponse struct {
	Role      string         `json:"role"`
	RoleLabel string         `json:"role_label"`
	Items     []MenuEntryDTO `json:"items"`
}
