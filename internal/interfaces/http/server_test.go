package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/PetShop-api/internal/application/analytics"
	"github.com/jhoicas/PetShop-api/internal/application/auth"
	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/inventory"
	"github.com/jhoicas/PetShop-api/internal/application/sales"
	"github.com/jhoicas/PetShop-api/internal/application/usecase"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/memory"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/seed"
	apphttp "github.com/jhoicas/PetShop-api/internal/interfaces/http"
	"github.com/jhoicas/PetShop-api/pkg/config"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "petshop-api-test"
	testExpMin    = 60
)

var (
	credOnce sync.Once
	credTab  *auth.CredentialTable
)

func credentials(t *testing.T) *auth.CredentialTable {
	t.Helper()
	credOnce.Do(func() {
		var err error
		credTab, err = auth.NewCredentialTable(auth.DefaultCredentials(), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
	})
	return credTab
}

var testUI = config.UIConfig{LoginPath: "/login", HomePath: "/dashboard"}

// newServer arma la aplicación completa sobre repositorios en memoria con el dataset demo.
func newServer(t *testing.T, limiter *apphttp.RateLimiter) (*fiber.App, *apphttp.Metrics) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()

	repos := memory.NewRepos()
	require.NoError(t, seed.Load(ctx, repos, now))
	tx := memory.NewTxRunner(repos.Products, repos.Sales, repos.Movements)

	guard := auth.NewSessionGuard(memory.NewSessionStore("auth-storage"), credentials(t), auth.GuardConfig{}, nil)
	src := analytics.Sources{
		Products:     repos.Products,
		Sales:        repos.Sales,
		Expenses:     repos.Expenses,
		Customers:    repos.Customers,
		Pets:         repos.Pets,
		Appointments: repos.Appointments,
	}
	metrics := apphttp.NewMetrics(nil)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		Guard:           guard,
		JWT:             config.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer, Expiration: testExpMin},
		UI:              testUI,
		LoginLimiter:    limiter,
		Metrics:         metrics,
		ProductUC:       usecase.NewProductUseCase(repos.Products, repos.Suppliers),
		StockUC:         inventory.NewStockUseCase(tx, repos.Products, repos.Movements, nil),
		ReplenishmentUC: inventory.NewReplenishmentUseCase(repos.Products, repos.Sales),
		CheckoutUC:      sales.NewCheckoutUseCase(tx, repos.Sales, nil),
		CustomerUC:      usecase.NewCustomerUseCase(repos.Customers),
		PetUC:           usecase.NewPetUseCase(repos.Pets, repos.Customers),
		SupplierUC:      usecase.NewSupplierUseCase(repos.Suppliers),
		AppointmentUC:   usecase.NewAppointmentUseCase(repos.Appointments, repos.Pets),
		ExpenseUC:       usecase.NewExpenseUseCase(repos.Expenses),
		UserUC:          usecase.NewUserUseCase(repos.Users),
		SettingsUC:      usecase.NewSettingsUseCase(repos.Settings, *seed.DefaultSettings(now)),
		NotificationUC:  usecase.NewNotificationUseCase(repos.Notifications, repos.Products, repos.Settings),
		DashboardUC:     analytics.NewDashboardUseCase(src),
		FinanceUC:       analytics.NewFinanceUseCase(src),
		ReportsUC:       analytics.NewReportsUseCase(src),
	})
	return app, metrics
}

// do lanza la petición con token opcional y cuerpo JSON opcional.
func do(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login autentica y devuelve el token.
func login(t *testing.T, app *fiber.App, identifier, password string) string {
	t.Helper()
	resp := do(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Identifier: identifier, Password: password})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e.Code
}

func doRaw(t *testing.T, app *fiber.App, method, path, token string, body io.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
