package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PetShop-api/internal/application/analytics"
	"github.com/jhoicas/PetShop-api/internal/application/auth"
	"github.com/jhoicas/PetShop-api/internal/application/inventory"
	"github.com/jhoicas/PetShop-api/internal/application/sales"
	"github.com/jhoicas/PetShop-api/internal/application/usecase"
	"github.com/jhoicas/PetShop-api/internal/domain/access"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/pkg/config"
	"github.com/jhoicas/PetShop-api/pkg/validator"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Guard        *auth.SessionGuard
	JWT          config.JWTConfig
	UI           config.UIConfig
	LoginLimiter *RateLimiter // nil = sin límite
	Metrics      *Metrics
	Validator    *validator.Validator

	ProductUC       *usecase.ProductUseCase
	StockUC         *inventory.StockUseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	CheckoutUC      *sales.CheckoutUseCase
	CustomerUC      *usecase.CustomerUseCase
	PetUC           *usecase.PetUseCase
	SupplierUC      *usecase.SupplierUseCase
	AppointmentUC   *usecase.AppointmentUseCase
	ExpenseUC       *usecase.ExpenseUseCase
	UserUC          *usecase.UserUseCase
	SettingsUC      *usecase.SettingsUseCase
	NotificationUC  *usecase.NotificationUseCase
	DashboardUC     *analytics.DashboardUseCase
	FinanceUC       *analytics.FinanceUseCase
	ReportsUC       *analytics.ReportsUseCase
}

// Router registra las rutas de la API y las pantallas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}
	if deps.Metrics == nil {
		deps.Metrics = NewMetrics(nil)
	}
	v := deps.Validator
	m := deps.Metrics

	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())

	session := SessionMiddleware(deps.JWT.Secret, deps.Guard)
	authHandler := NewAuthHandler(deps.Guard, deps.JWT, deps.UI, v, m)

	app.Get(deps.UI.LoginPath, session, authHandler.LoginPage)

	api := app.Group("/api", session)

	// Auth (público)
	authGroup := api.Group("/auth")
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", deps.LoginLimiter.Handler(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)
	api.Get("/menu", authHandler.Menu)

	view := func(vw access.View) fiber.Router {
		return api.Group("/"+string(vw), RequireView(vw, deps.UI, m))
	}
	staff := RequireRole(entity.RoleAdmin, entity.RoleEmployee)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	view(access.ViewDashboard).Get("/summary", dashboardHandler.GetSummary)

	// Finanzas y reportes
	analyticsHandler := NewAnalyticsHandler(deps.FinanceUC, deps.ReportsUC)
	view(access.ViewFinance).Get("/summary", analyticsHandler.FinanceSummary)
	reports := view(access.ViewReports)
	reports.Get("/margins", analyticsHandler.ProductMargins)
	reports.Get("/sales", analyticsHandler.SalesReport)
	reports.Get("/breakdown", analyticsHandler.Breakdown)

	// Punto de venta
	saleHandler := NewSaleHandler(deps.CheckoutUC, v, m)
	salesGroup := view(access.ViewSales)
	salesGroup.Post("/", saleHandler.Checkout)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Inventario
	productHandler := NewProductHandler(deps.ProductUC, v)
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.ReplenishmentUC, v)
	inv := view(access.ViewInventory)
	inv.Get("/products", productHandler.List)
	inv.Get("/products/low-stock", productHandler.LowStock)
	inv.Get("/products/barcode/:code", productHandler.GetByBarcode)
	inv.Get("/products/:id", productHandler.GetByID)
	inv.Post("/products", staff, productHandler.Create)
	inv.Put("/products/:id", adminOnly, productHandler.Update)
	inv.Delete("/products/:id", adminOnly, productHandler.Delete)
	inv.Post("/products/:id/restock", staff, inventoryHandler.Restock)
	inv.Post("/products/:id/adjust", adminOnly, inventoryHandler.Adjust)
	inv.Get("/products/:id/movements", staff, inventoryHandler.Movements)
	inv.Get("/replenishment", staff, inventoryHandler.Replenishment)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC, v)
	customers := view(access.ViewCustomers)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Mascotas
	petHandler := NewPetHandler(deps.PetUC, v)
	pets := view(access.ViewPets)
	pets.Get("/", petHandler.List)
	pets.Post("/", petHandler.Create)
	pets.Get("/:id", petHandler.GetByID)
	pets.Put("/:id", petHandler.Update)
	pets.Delete("/:id", petHandler.Delete)

	// Proveedores
	supplierHandler := NewSupplierHandler(deps.SupplierUC, v)
	suppliers := view(access.ViewSuppliers)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Citas
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC, v)
	appointments := view(access.ViewAppointments)
	appointments.Get("/", appointmentHandler.List)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Patch("/:id/status", appointmentHandler.ChangeStatus)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Gastos
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, v)
	expenses := view(access.ViewExpenses)
	expenses.Get("/summary", expenseHandler.Summary)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC, v)
	users := view(access.ViewUsers)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Configuración
	settingsHandler := NewSettingsHandler(deps.SettingsUC, v)
	settings := view(access.ViewSettings)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", adminOnly, settingsHandler.Update)

	// Notificaciones del encabezado: cualquier sesión iniciada
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications := api.Group("/notifications", RequireSession())
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)

	api.All("/*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "ruta no encontrada")
	})

	// Pantallas de la consola: mismo guard que la API.
	for _, vw := range access.Views() {
		e, _ := access.Lookup(vw)
		vw := vw
		app.Get(e.Path, session, RequireView(vw, deps.UI, m), func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"view": string(vw)})
		})
	}

	// Rutas desconocidas fuera de la API vuelven al inicio.
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") || c.Method() != fiber.MethodGet {
			return fiber.ErrNotFound
		}
		return c.Redirect(deps.UI.HomePath, fiber.StatusFound)
	})
}
