package entity

// Role rol de un usuario del sistema. Conjunto cerrado.
type Role string

// Roles válidos.
const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleCashier  Role = "cashier"
)

// Roles devuelve todos los roles en orden de privilegio descendente.
func Roles() []Role {
	return []Role{RoleAdmin, RoleEmployee, RoleCashier}
}

// Valid informa si r pertenece al conjunto cerrado de roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleCashier:
		return true
	}
	return false
}

// Label nombre visible del rol en la consola.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleCashier:
		return "Cajero"
	case RoleEmployee:
		return "Empleado"
	}
	return string(r)
}
