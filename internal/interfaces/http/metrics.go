package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/PetShop-api/internal/domain/access"
)

// Metrics contadores Prometheus del servicio.
type Metrics struct {
	gatherer prometheus.Gatherer

	LoginTotal      *prometheus.CounterVec
	GuardDecisions  *prometheus.CounterVec
	SalesTotal      prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registra las métricas en reg. Con reg nil usa un registro propio.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		LoginTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petshop",
			Name:      "login_total",
			Help:      "Intentos de login por resultado",
		}, []string{"outcome"}),
		GuardDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petshop",
			Name:      "guard_decisions_total",
			Help:      "Decisiones del guard por vista",
		}, []string{"view", "decision"}),
		SalesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: "petshop",
			Name:      "sales_completed_total",
			Help:      "Ventas registradas",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "petshop",
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) login(outcome string) {
	if m != nil {
		m.LoginTotal.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) guard(v access.View, d access.Decision) {
	if m != nil {
		m.GuardDecisions.WithLabelValues(string(v), d.String()).Inc()
	}
}

func (m *Metrics) sale() {
	if m != nil {
		m.SalesTotal.Inc()
	}
}

// Handler expone /metrics.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}

// Middleware mide la duración de cada petición por ruta registrada.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			// se mide el status que escribe el ErrorHandler, no el 200 por defecto
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		m.RequestDuration.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
		return nil
	}
}
