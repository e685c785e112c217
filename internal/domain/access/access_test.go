package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/PetShop-api/internal/domain/access"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
)

func sessionFor(role entity.Role) entity.Session {
	return entity.Session{
		User:            &entity.User{ID: 1, DisplayName: "x", Email: "x@petshop.com", Role: role},
		IsAuthenticated: true,
	}
}

func TestAuthorize_SinSesionRedirigeAlLogin(t *testing.T) {
	assert.Equal(t, access.RedirectLogin, access.Authorize(entity.LoggedOut(), nil))
	assert.Equal(t, access.RedirectLogin, access.Authorize(entity.LoggedOut(), []entity.Role{entity.RoleAdmin}))

	// Flag autenticado sin usuario: se trata como no autenticado.
	assert.Equal(t, access.RedirectLogin, access.Authorize(entity.Session{IsAuthenticated: true}, nil))
}

func TestAuthorize_ListaVaciaNuncaRedirige(t *testing.T) {
	for _, r := range entity.Roles() {
		assert.Equal(t, access.Render, access.Authorize(sessionFor(r), nil), "rol %s", r)
		assert.Equal(t, access.Render, access.Authorize(sessionFor(r), []entity.Role{}), "rol %s", r)
	}
}

func TestAuthorize_SoloAdminNiegaEmpleadoYCajero(t *testing.T) {
	admin := []entity.Role{entity.RoleAdmin}
	assert.Equal(t, access.Render, access.Authorize(sessionFor(entity.RoleAdmin), admin))
	assert.Equal(t, access.Deny, access.Authorize(sessionFor(entity.RoleEmployee), admin))
	assert.Equal(t, access.Deny, access.Authorize(sessionFor(entity.RoleCashier), admin))
}

func TestAuthorizeView_Tabla(t *testing.T) {
	cases := []struct {
		view     access.View
		admin    access.Decision
		employee access.Decision
		cashier  access.Decision
	}{
		{access.ViewDashboard, access.Render, access.Render, access.Deny},
		{access.ViewFinance, access.Render, access.Deny, access.Deny},
		{access.ViewSales, access.Render, access.Render, access.Render},
		{access.ViewCustomers, access.Render, access.Render, access.Deny},
		{access.ViewPets, access.Render, access.Render, access.Deny},
		{access.ViewInventory, access.Render, access.Render, access.Render},
		{access.ViewSuppliers, access.Render, access.Render, access.Deny},
		{access.ViewAppointments, access.Render, access.Render, access.Deny},
		{access.ViewExpenses, access.Render, access.Deny, access.Deny},
		{access.ViewReports, access.Render, access.Deny, access.Deny},
		{access.ViewUsers, access.Render, access.Deny, access.Deny},
		{access.ViewSettings, access.Render, access.Render, access.Deny},
	}
	for _, tc := range cases {
		t.Run(string(tc.view), func(t *testing.T) {
			assert.Equal(t, tc.admin, access.AuthorizeView(sessionFor(entity.RoleAdmin), tc.view))
			assert.Equal(t, tc.employee, access.AuthorizeView(sessionFor(entity.RoleEmployee), tc.view))
			assert.Equal(t, tc.cashier, access.AuthorizeView(sessionFor(entity.RoleCashier), tc.view))
			assert.Equal(t, access.RedirectLogin, access.AuthorizeView(entity.LoggedOut(), tc.view))
		})
	}
	assert.Len(t, cases, len(access.Views()), "todas las vistas deben estar cubiertas")
}

func TestAuthorizeView_VistaDesconocida(t *testing.T) {
	assert.Equal(t, access.Deny, access.AuthorizeView(sessionFor(entity.RoleAdmin), access.View("nope")))
	assert.Equal(t, access.RedirectLogin, access.AuthorizeView(entity.LoggedOut(), access.View("nope")))
}

func TestMenu_CajeroSoloVentasEInventario(t *testing.T) {
	menu := access.Menu(sessionFor(entity.RoleCashier))
	var views []access.View
	for _, e := range menu {
		views = append(views, e.View)
	}
	assert.Equal(t, []access.View{access.ViewSales, access.ViewInventory}, views)
}

func TestMenu_EmpleadoSinVistasDeAdmin(t *testing.T) {
	menu := access.Menu(sessionFor(entity.RoleEmployee))
	assert.Len(t, menu, 8)
	for _, e := range menu {
		assert.NotContains(t, []access.View{access.ViewFinance, access.ViewExpenses, access.ViewReports, access.ViewUsers}, e.View)
	}
}

func TestMenu_AdminVeTodo(t *testing.T) {
	assert.Len(t, access.Menu(sessionFor(entity.RoleAdmin)), len(access.Views()))
	assert.Empty(t, access.Menu(entity.LoggedOut()))
}
