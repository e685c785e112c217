package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jhoicas/PetShop-api/docs"
	appanalytics "github.com/jhoicas/PetShop-api/internal/application/analytics"
	"github.com/jhoicas/PetShop-api/internal/application/auth"
	"github.com/jhoicas/PetShop-api/internal/application/inventory"
	"github.com/jhoicas/PetShop-api/internal/application/ports"
	"github.com/jhoicas/PetShop-api/internal/application/sales"
	"github.com/jhoicas/PetShop-api/internal/application/usecase"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/cache"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/memory"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/PetShop-api/internal/infrastructure/redis"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/PetShop-api/internal/interfaces/http"
	"github.com/jhoicas/PetShop-api/pkg/config"
	"github.com/jhoicas/PetShop-api/pkg/logger"
	"github.com/jhoicas/PetShop-api/pkg/validator"
)

// sessionCacheTTL vida máxima de una sesión en la caché local.
const sessionCacheTTL = 30 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.StorageDriver).
		Str("sessions", cfg.Session.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()
	now := time.Now()

	// Persistencia
	var (
		repos    seed.Repos
		txRunner ports.TxRunner
		db       pinger
	)
	switch cfg.App.StorageDriver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		db = pool

		migrations, err := postgres.Migrations()
		if err != nil {
			log.Fatal().Err(err).Msg("leer migraciones")
		}
		applied, err := postgres.Migrate(ctx, pool, migrations)
		if err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones al día")

		repos = seed.Repos{
			Products:     postgres.NewProductRepository(pool),
			Customers:    postgres.NewCustomerRepository(pool),
			Pets:         postgres.NewPetRepository(pool),
			Suppliers:    postgres.NewSupplierRepository(pool),
			Appointments: postgres.NewAppointmentRepository(pool),
			Expenses:     postgres.NewExpenseRepository(pool),
			Sales:        postgres.NewSaleRepository(pool),
			Users:        postgres.NewUserRepository(pool),
			Settings:     postgres.NewSettingsRepository(pool),
			Movements:    postgres.NewInventoryMovementRepository(pool),

			Notifications: postgres.NewNotificationRepository(pool),
		}
		txRunner = postgres.NewTxRunner(pool)
	default:
		repos = memory.NewRepos()
		if err := seed.Load(ctx, repos, now); err != nil {
			log.Fatal().Err(err).Msg("cargar dataset demo")
		}
		txRunner = memory.NewTxRunner(repos.Products, repos.Sales, repos.Movements)
	}

	// Sesiones
	var sessionStore repository.SessionStore
	switch cfg.Session.Store {
	case "redis":
		rdb, err := infraredis.NewClient(ctx, cfg.Session.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sessionStore = infraredis.NewSessionStore(rdb, cfg.Session.KeyPrefix, cfg.Session.TTL())
	default:
		sessionStore = memory.NewSessionStore(cfg.Session.KeyPrefix)
	}
	if cfg.Session.CacheSize > 0 {
		sessionStore = cache.NewSessionCache(sessionStore, cfg.Session.CacheSize, sessionCacheTTL)
	}

	creds, err := auth.NewCredentialTable(auth.DefaultCredentials(), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de credenciales")
	}
	guard := auth.NewSessionGuard(sessionStore, creds, auth.GuardConfig{LoginDelay: cfg.Auth.LoginDelay()}, log)

	// Casos de uso
	src := appanalytics.Sources{
		Products:     repos.Products,
		Sales:        repos.Sales,
		Expenses:     repos.Expenses,
		Customers:    repos.Customers,
		Pets:         repos.Pets,
		Appointments: repos.Appointments,
	}
	productUC := usecase.NewProductUseCase(repos.Products, repos.Suppliers)
	stockUC := inventory.NewStockUseCase(txRunner, repos.Products, repos.Movements, log)
	replenishmentUC := inventory.NewReplenishmentUseCase(repos.Products, repos.Sales)
	checkoutUC := sales.NewCheckoutUseCase(txRunner, repos.Sales, log)
	customerUC := usecase.NewCustomerUseCase(repos.Customers)
	petUC := usecase.NewPetUseCase(repos.Pets, repos.Customers)
	supplierUC := usecase.NewSupplierUseCase(repos.Suppliers)
	appointmentUC := usecase.NewAppointmentUseCase(repos.Appointments, repos.Pets)
	expenseUC := usecase.NewExpenseUseCase(repos.Expenses)
	userUC := usecase.NewUserUseCase(repos.Users)
	settingsUC := usecase.NewSettingsUseCase(repos.Settings, *seed.DefaultSettings(now))
	notificationUC := usecase.NewNotificationUseCase(repos.Notifications, repos.Products, repos.Settings)
	dashboardUC := appanalytics.NewDashboardUseCase(src)
	financeUC := appanalytics.NewFinanceUseCase(src)
	reportsUC := appanalytics.NewReportsUseCase(src)

	// Métricas
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpRouter.NewMetrics(registry)

	loginLimiter := httpRouter.NewRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst, 10*time.Minute)
	defer loginLimiter.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.HTTP.SwaggerFile,
		Path:     "docs",
		Title:    "PetShop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name, "db": "down"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Guard:           guard,
		JWT:             cfg.JWT,
		UI:              cfg.UI,
		LoginLimiter:    loginLimiter,
		Metrics:         metrics,
		Validator:       validator.New(),
		ProductUC:       productUC,
		StockUC:         stockUC,
		ReplenishmentUC: replenishmentUC,
		CheckoutUC:      checkoutUC,
		CustomerUC:      customerUC,
		PetUC:           petUC,
		SupplierUC:      supplierUC,
		AppointmentUC:   appointmentUC,
		ExpenseUC:       expenseUC,
		UserUC:          userUC,
		SettingsUC:      settingsUC,
		NotificationUC:  notificationUC,
		DashboardUC:     dashboardUC,
		FinanceUC:       financeUC,
		ReportsUC:       reportsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
