package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/PetShop-api/internal/application/auth"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/access"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var (
	tableOnce sync.Once
	table     *auth.CredentialTable
)

func credentials(t *testing.T) *auth.CredentialTable {
	t.Helper()
	tableOnce.Do(func() {
		var err error
		table, err = auth.NewCredentialTable(auth.DefaultCredentials(), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
	})
	return table
}

func newGuard(t *testing.T, delay time.Duration) (*auth.SessionGuard, *memory.SessionStore) {
	t.Helper()
	store := memory.NewSessionStore("auth-storage")
	g := auth.NewSessionGuard(store, credentials(t), auth.GuardConfig{LoginDelay: delay}, nil)
	return g, store
}

// failingStore falla siempre al guardar.
type failingStore struct{ *memory.SessionStore }

func (failingStore) Save(context.Context, string, entity.Session) error {
	return errors.New("store caído")
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_CuentasSembradas(t *testing.T) {
	cases := []struct {
		identifier, password string
		wantID               int64
		wantRole             entity.Role
		wantName             string
	}{
		{"admin@petshop.com", "admin123", 1, entity.RoleAdmin, "Administrador"},
		{"maria@petshop.com", "maria123", 2, entity.RoleEmployee, "Maria Silva"},
		{"joao@petshop.com", "joao123", 3, entity.RoleCashier, "João Santos"},
		{"admin", "admin123", 1, entity.RoleAdmin, "Administrador"},
	}
	for _, tc := range cases {
		t.Run(tc.identifier, func(t *testing.T) {
			g, _ := newGuard(t, 0)
			ctx := context.Background()

			s, err := g.Authenticate(ctx, "sid-1", tc.identifier, tc.password)
			require.NoError(t, err)
			require.NotNil(t, s.User)
			assert.True(t, s.IsAuthenticated)
			assert.Equal(t, tc.wantID, s.User.ID)
			assert.Equal(t, tc.wantRole, s.User.Role)
			assert.Equal(t, tc.wantName, s.User.DisplayName)

			cur, err := g.Current(ctx, "sid-1")
			require.NoError(t, err)
			assert.Equal(t, s, cur)
		})
	}
}

func TestAuthenticate_SinDistinguirMayusculas(t *testing.T) {
	g, _ := newGuard(t, 0)
	ctx := context.Background()

	for _, id := range []string{"ADMIN@PETSHOP.COM", "joão santos", "JOÃO SANTOS", "MARIA SILVA"} {
		s, err := g.Authenticate(ctx, "sid", id, map[string]string{
			"ADMIN@PETSHOP.COM": "admin123",
			"joão santos":       "joao123",
			"JOÃO SANTOS":       "joao123",
			"MARIA SILVA":       "maria123",
		}[id])
		require.NoError(t, err, id)
		assert.True(t, s.IsAuthenticated, id)
	}
}

func TestAuthenticate_EspaciosNoSeRecortan(t *testing.T) {
	g, _ := newGuard(t, 0)
	for _, id := range []string{"  maria silva ", "admin@petshop.com "} {
		_, err := g.Authenticate(context.Background(), "sid", id, map[string]string{
			"  maria silva ":     "maria123",
			"admin@petshop.com ": "admin123",
		}[id])
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "%q", id)
	}
}

func TestAuthenticate_PasswordDistingueMayusculas(t *testing.T) {
	g, _ := newGuard(t, 0)
	_, err := g.Authenticate(context.Background(), "sid", "admin@petshop.com", "ADMIN123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_CredencialesInvalidasNoTocanSesion(t *testing.T) {
	g, store := newGuard(t, 0)
	ctx := context.Background()

	_, err := g.Authenticate(ctx, "sid", "nadie@petshop.com", "x")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, store.Raw("sid"), "un login fallido no debe persistir nada")

	before, err := g.Authenticate(ctx, "sid", "maria@petshop.com", "maria123")
	require.NoError(t, err)

	_, err = g.Authenticate(ctx, "sid", "admin@petshop.com", "mal")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	cur, err := g.Current(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, before, cur, "la sesión previa se conserva")
}

func TestAuthenticate_SessionIDVacio(t *testing.T) {
	g, _ := newGuard(t, 0)
	_, err := g.Authenticate(context.Background(), "", "admin@petshop.com", "admin123")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthenticate_RespetaRetardo(t *testing.T) {
	g, _ := newGuard(t, 30*time.Millisecond)
	start := time.Now()
	_, err := g.Authenticate(context.Background(), "sid", "admin@petshop.com", "admin123")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestAuthenticate_ContextoCanceladoDuranteRetardo(t *testing.T) {
	g, store := newGuard(t, time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.Authenticate(ctx, "sid", "admin@petshop.com", "admin123")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, store.Raw("sid"))
}

func TestAuthenticate_ErrorAlGuardar(t *testing.T) {
	store := failingStore{SessionStore: memory.NewSessionStore("auth-storage")}
	g := auth.NewSessionGuard(store, credentials(t), auth.GuardConfig{}, nil)
	_, err := g.Authenticate(context.Background(), "sid", "admin@petshop.com", "admin123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// EndSession / rehidratación
// ──────────────────────────────────────────────────────────────────────────────

func TestEndSession_LuegoAuthorizeRedirigeALogin(t *testing.T) {
	g, store := newGuard(t, 0)
	ctx := context.Background()

	_, err := g.Authenticate(ctx, "sid", "admin@petshop.com", "admin123")
	require.NoError(t, err)
	dec, _, err := g.Authorize(ctx, "sid", access.ViewFinance)
	require.NoError(t, err)
	assert.Equal(t, access.Render, dec)

	require.NoError(t, g.EndSession(ctx, "sid"))
	assert.JSONEq(t, `{"user":null,"isAuthenticated":false}`, string(store.Raw("sid")))

	for _, v := range access.Views() {
		dec, s, err := g.Authorize(ctx, "sid", v)
		require.NoError(t, err)
		assert.Equal(t, access.RedirectLogin, dec, v)
		assert.False(t, s.IsAuthenticated)
	}
}

func TestEndSession_SinSesionNoFalla(t *testing.T) {
	g, _ := newGuard(t, 0)
	ctx := context.Background()
	require.NoError(t, g.EndSession(ctx, "nunca-logueado"))
	require.NoError(t, g.EndSession(ctx, "nunca-logueado"))
	s, err := g.Current(ctx, "nunca-logueado")
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated)
}

func TestRehidratacion_NuevoGuardMismoStore(t *testing.T) {
	store := memory.NewSessionStore("auth-storage")
	ctx := context.Background()

	g1 := auth.NewSessionGuard(store, credentials(t), auth.GuardConfig{}, nil)
	s, err := g1.Authenticate(ctx, "sid", "joao@petshop.com", "joao123")
	require.NoError(t, err)

	g2 := auth.NewSessionGuard(store, credentials(t), auth.GuardConfig{}, nil)
	cur, err := g2.Current(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, s, cur)

	dec, _, err := g2.Authorize(ctx, "sid", access.ViewSales)
	require.NoError(t, err)
	assert.Equal(t, access.Render, dec)
	dec, _, err = g2.Authorize(ctx, "sid", access.ViewDashboard)
	require.NoError(t, err)
	assert.Equal(t, access.Deny, dec)
}

func TestSesionesIndependientesPorCliente(t *testing.T) {
	g, _ := newGuard(t, 0)
	ctx := context.Background()

	_, err := g.Authenticate(ctx, "a", "admin@petshop.com", "admin123")
	require.NoError(t, err)
	_, err = g.Authenticate(ctx, "b", "joao@petshop.com", "joao123")
	require.NoError(t, err)
	require.NoError(t, g.EndSession(ctx, "b"))

	a, _ := g.Current(ctx, "a")
	b, _ := g.Current(ctx, "b")
	assert.True(t, a.IsAuthenticated)
	assert.False(t, b.IsAuthenticated)
}

func TestMenu_SegunRol(t *testing.T) {
	g, _ := newGuard(t, 0)
	ctx := context.Background()

	entries, _, err := g.Menu(ctx, "sin-sesion")
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = g.Authenticate(ctx, "sid", "joao@petshop.com", "joao123")
	require.NoError(t, err)
	entries, s, err := g.Menu(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, s.Role())
	views := make([]access.View, 0, len(entries))
	for _, e := range entries {
		views = append(views, e.View)
	}
	assert.Equal(t, []access.View{access.ViewSales, access.ViewInventory}, views)
}
