package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/PetShop-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Guard de vistas
// ──────────────────────────────────────────────────────────────────────────────

// Sin token la vista redirige al login.
func TestRequireView_SinSesionRedirigeALogin(t *testing.T) {
	app, _ := newServer(t, nil)
	resp := do(t, app, http.MethodGet, "/api/dashboard/summary", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

// Un token con firma inválida equivale a no tener sesión.
func TestRequireView_TokenInvalidoRedirigeALogin(t *testing.T) {
	app, _ := newServer(t, nil)
	forged, err := pkgjwt.Generate("otro-secreto", "sid-falso", 1, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := do(t, app, http.MethodGet, "/api/sales", forged, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

// Un token válido cuya sesión nunca se persistió también redirige.
func TestRequireView_SesionNoPersistidaRedirige(t *testing.T) {
	app, _ := newServer(t, nil)
	tok, err := pkgjwt.Generate(testJWTSecret, "sid-desconocido", 1, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := do(t, app, http.MethodGet, "/api/customers", tok, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

// El cajero en una vista de staff recibe 204 sin cuerpo.
func TestRequireView_CajeroEnDashboardNoVeNada(t *testing.T) {
	app, _ := newServer(t, nil)
	tok := login(t, app, "joao", "joao123")

	resp := do(t, app, http.MethodGet, "/api/dashboard/summary", tok, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestRequireView_MatrizRoles(t *testing.T) {
	app, _ := newServer(t, nil)
	tokens := map[entity.Role]string{
		entity.RoleAdmin:    login(t, app, "admin", "admin123"),
		entity.RoleEmployee: login(t, app, "maria", "maria123"),
		entity.RoleCashier:  login(t, app, "joao", "joao123"),
	}
	cases := []struct {
		path string
		want map[entity.Role]int
	}{
		{"/api/dashboard/summary", map[entity.Role]int{entity.RoleAdmin: 200, entity.RoleEmployee: 200, entity.RoleCashier: 204}},
		{"/api/finance/summary", map[entity.Role]int{entity.RoleAdmin: 200, entity.RoleEmployee: 204, entity.RoleCashier: 204}},
		{"/api/sales", map[entity.Role]int{entity.RoleAdmin: 200, entity.RoleEmployee: 200, entity.RoleCashier: 200}},
		{"/api/inventory/products", map[entity.Role]int{entity.RoleAdmin: 200, entity.RoleEmployee: 200, entity.RoleCashier: 200}},
		{"/api/customers", map[entity.Role]int{entity.RoleAdmin: 200, entity.RoleEmployee: 200, entity.RoleCashier: 204}},
		{"/api/expenses", map[entity.Role]int{entity.RoleAdmin: 200, entity.RoleEmployee: 204, entity.RoleCashier: 204}},
		{"/api/reports/margins", map[entity.Role]int{entity.RoleAdmin: 200, entity.RoleEmployee: 204, entity.RoleCashier: 204}},
		{"/api/users", map[entity.Role]int{entity.RoleAdmin: 200, entity.RoleEmployee: 204, entity.RoleCashier: 204}},
		{"/api/settings", map[entity.Role]int{entity.RoleAdmin: 200, entity.RoleEmployee: 200, entity.RoleCashier: 204}},
	}
	for _, tc := range cases {
		for role, want := range tc.want {
			resp := do(t, app, http.MethodGet, tc.path, tokens[role], nil)
			resp.Body.Close()
			assert.Equal(t, want, resp.StatusCode, "%s como %s", tc.path, role)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole (acciones dentro de una vista)
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_CajeroNoCreaProductos(t *testing.T) {
	app, _ := newServer(t, nil)
	tok := login(t, app, "joao", "joao123")

	resp := do(t, app, http.MethodPost, "/api/inventory/products", tok, map[string]interface{}{
		"name": "Arena sanitaria", "sku": "AR-001", "price": "25.00", "cost": "12.00",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

func TestRequireRole_EmpleadoNoEditaConfiguracion(t *testing.T) {
	app, _ := newServer(t, nil)
	tok := login(t, app, "maria", "maria123")

	resp := do(t, app, http.MethodPut, "/api/settings", tok, map[string]interface{}{"store_name": "X"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

func TestRequireRole_EmpleadoCreaProducto(t *testing.T) {
	app, _ := newServer(t, nil)
	tok := login(t, app, "maria", "maria123")

	resp := do(t, app, http.MethodPost, "/api/inventory/products", tok, map[string]interface{}{
		"name": "Arena sanitaria", "category": "Higiene", "sku": "AR-001", "barcode": "7890000000001",
		"price": "25.00", "cost": "12.00", "stock": 10, "min_stock": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.ProductResponse
	decode(t, resp, &out)
	assert.Equal(t, "AR-001", out.SKU)
	assert.NotZero(t, out.ID)
}
