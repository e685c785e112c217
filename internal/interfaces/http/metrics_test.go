package http_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PetShop-api/internal/domain"
	apphttp "github.com/jhoicas/PetShop-api/internal/interfaces/http"
)

func TestMetricsMiddleware_StatusSegunError(t *testing.T) {
	m := apphttp.NewMetrics(nil)
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/metrics", m.Handler())
	app.Use(m.Middleware())
	app.Get("/falla", func(*fiber.Ctx) error { return errors.New("sin conexión") })
	app.Get("/prohibido", func(*fiber.Ctx) error { return fiber.ErrForbidden })
	app.Get("/duplicado", func(*fiber.Ctx) error { return domain.ErrDuplicate })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	for path, want := range map[string]int{"/falla": 500, "/prohibido": 403, "/duplicado": 409, "/ok": 204} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, want, resp.StatusCode, path)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	text := string(raw)
	assert.Contains(t, text, `petshop_http_request_duration_seconds_count{method="GET",route="/falla",status="500"} 1`)
	assert.Contains(t, text, `petshop_http_request_duration_seconds_count{method="GET",route="/prohibido",status="403"} 1`)
	assert.Contains(t, text, `petshop_http_request_duration_seconds_count{method="GET",route="/duplicado",status="409"} 1`)
	assert.Contains(t, text, `petshop_http_request_duration_seconds_count{method="GET",route="/ok",status="204"} 1`)
	assert.NotContains(t, text, `route="/falla",status="200"`)
}
