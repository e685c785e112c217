// Package access contiene la tabla declarativa de vistas de la consola y la
// decisión del guard: redirigir al login, negar en silencio o mostrar la vista.
package access

import (
	"slices"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

// View sección de la consola. Unidad de control de acceso por rol.
type View string

// Vistas de la consola, en el orden del menú.
const (
	ViewDashboard    View = "dashboard"
	ViewFinance      View = "finance"
	ViewSales        View = "sales"
	ViewCustomers    View = "customers"
	ViewPets         View = "pets"
	ViewInventory    View = "inventory"
	ViewSuppliers    View = "suppliers"
	ViewAppointments View = "appointments"
	ViewExpenses     View = "expenses"
	ViewReports      View = "reports"
	ViewUsers        View = "users"
	ViewSettings     View = "settings"
)

// Decision resultado de evaluar el guard.
type Decision int

const (
	// Render la vista se muestra.
	Render Decision = iota
	// RedirectLogin la sesión no está autenticada.
	RedirectLogin
	// Deny sesión autenticada con rol fuera de la lista; no se muestra nada.
	Deny
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect_login"
	case Deny:
		return "deny"
	}
	return "unknown"
}

// Entry fila de la tabla de acceso.
type Entry struct {
	View  View
	Label string
	Path  string
	Roles []entity.Role // vacío = todos los roles
}

var (
	staff     = []entity.Role{entity.RoleAdmin, entity.RoleEmployee}
	adminOnly = []entity.Role{entity.RoleAdmin}
)

// table vista -> roles permitidos. El menú y el guard leen la misma tabla.
var table = []Entry{
	{View: ViewDashboard, Label: "Dashboard", Path: "/dashboard", Roles: staff},
	{View: ViewFinance, Label: "Finanzas", Path: "/finance", Roles: adminOnly},
	{View: ViewSales, Label: "Ventas", Path: "/sales"},
	{View: ViewCustomers, Label: "Clientes", Path: "/customers", Roles: staff},
	{View: ViewPets, Label: "Mascotas", Path: "/pets", Roles: staff},
	{View: ViewInventory, Label: "Inventario", Path: "/inventory"},
	{View: ViewSuppliers, Label: "Proveedores", Path: "/suppliers", Roles: staff},
	{View: ViewAppointments, Label: "Citas", Path: "/appointments", Roles: staff},
	{View: ViewExpenses, Label: "Gastos", Path: "/expenses", Roles: adminOnly},
	{View: ViewReports, Label: "Reportes", Path: "/reports", Roles: adminOnly},
	{View: ViewUsers, Label: "Usuarios", Path: "/users", Roles: adminOnly},
	{View: ViewSettings, Label: "Configuración", Path: "/settings", Roles: staff},
}

// Lookup devuelve la fila de la vista.
func Lookup(v View) (Entry, bool) {
	for _, e := range table {
		if e.View == v {
			return e, true
		}
	}
	return Entry{}, false
}

// AllowedRoles roles permitidos para la vista. nil = todos.
// Una vista desconocida no admite ningún rol.
func AllowedRoles(v View) ([]entity.Role, bool) {
	e, ok := Lookup(v)
	if !ok {
		return nil, false
	}
	return e.Roles, true
}

// Authorize evalúa el guard para la sesión y la lista de roles permitidos.
func Authorize(s entity.Session, allowed []entity.Role) Decision {
	if !s.IsAuthenticated || s.User == nil {
		return RedirectLogin
	}
	if len(allowed) > 0 && !slices.Contains(allowed, s.User.Role) {
		return Deny
	}
	return Render
}

// AuthorizeView aplica Authorize con los roles de la tabla. Vista desconocida -> Deny
// para sesiones autenticadas.
func AuthorizeView(s entity.Session, v View) Decision {
	allowed, ok := AllowedRoles(v)
	if !ok {
		if Authorize(s, nil) == RedirectLogin {
			return RedirectLogin
		}
		return Deny
	}
	return Authorize(s, allowed)
}

// Menu entradas visibles para la sesión, en orden.
func Menu(s entity.Session) []Entry {
	out := make([]Entry, 0, len(table))
	for _, e := range table {
		if Authorize(s, e.Roles) == Render {
			out = append(out, e)
		}
	}
	return out
}

// Views todas las vistas en orden de menú.
func Views() []View {
	out := make([]View, 0, len(table))
	for _, e := range table {
		out = append(out, e.View)
	}
	return out
}
