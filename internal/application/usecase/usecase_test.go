package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PetShop-api/internal/application/dto"
	"github.com/jhoicas/PetShop-api/internal/application/usecase"
	"github.com/jhoicas/PetShop-api/internal/domain"
	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/memory"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/seed"
)

func seeded(t *testing.T) seed.Repos {
	t.Helper()
	r := memory.NewRepos()
	require.NoError(t, seed.Load(context.Background(), r, time.Now()))
	return r
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func validProduct(sku, barcode string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name: "Arena Sanitaria 4kg", Brand: "Pipicat", Category: "Higiene",
		SKU: sku, Barcode: barcode,
		Price: decimal.RequireFromString("25.00"), Cost: decimal.RequireFromString("15.00"),
		Stock: 10, MinStock: 5,
	}
}

func TestProductUseCase_Create(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewProductUseCase(r.Products, r.Suppliers)
	ctx := context.Background()

	got, err := uc.Create(ctx, validProduct("PI-001", "7890000000001"))
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.False(t, got.LowStock)
	assert.True(t, got.UnitProfit.Equal(decimal.RequireFromString("10")))
	assert.True(t, got.MarginPct.Equal(decimal.RequireFromString("40")))

	_, err = uc.Create(ctx, validProduct("rc-001", ""))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "SKU sin distinguir mayúsculas")

	_, err = uc.Create(ctx, validProduct("PI-002", "7891234567890"))
	assert.ErrorIs(t, err, domain.ErrDuplicate, "código de barras")

	neg := validProduct("PI-003", "")
	neg.Price = decimal.RequireFromString("-1")
	_, err = uc.Create(ctx, neg)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := validProduct("PI-004", "")
	bad.SupplierID = ptr(int64(999))
	_, err = uc.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_UpdateNoTocaCostoNiStock(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewProductUseCase(r.Products, r.Suppliers)
	ctx := context.Background()

	got, err := uc.Update(ctx, 1, dto.UpdateProductRequest{
		Name:  ptr("Alimento Premium Perros 20kg"),
		Price: ptr(decimal.RequireFromString("210.00")),
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alimento Premium Perros 20kg", got.Name)
	assert.Equal(t, 45, got.Stock)
	assert.True(t, got.Cost.Equal(decimal.RequireFromString("120")))

	missing, err := uc.Update(ctx, 999, dto.UpdateProductRequest{Name: ptr("x")})
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = uc.Update(ctx, 1, dto.UpdateProductRequest{SKU: ptr("RC-002")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUseCase_ListYBusquedas(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewProductUseCase(r.Products, r.Suppliers)
	ctx := context.Background()

	all, err := uc.List(ctx, dto.ProductFilterRequest{PageRequest: dto.PageRequest{Limit: 500}})
	require.NoError(t, err)
	assert.Equal(t, 100, all.Page.Limit, "limit se recorta a 100")
	assert.Equal(t, 8, all.Page.Total)

	premium, err := uc.List(ctx, dto.ProductFilterRequest{Search: "PREMIUM"})
	require.NoError(t, err)
	assert.Equal(t, 2, premium.Page.Total)
	assert.Equal(t, 20, premium.Page.Limit)

	low, err := uc.LowStock(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, low.Items, 1)
	assert.Equal(t, "PS-001", low.Items[0].SKU)
	assert.True(t, low.Items[0].LowStock)

	byCode, err := uc.GetByBarcode(ctx, " 7891234567893 ")
	require.NoError(t, err)
	require.NotNil(t, byCode)
	assert.Equal(t, "KG-001", byCode.SKU)

	_, err = uc.GetByBarcode(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	none, err := uc.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, none)

	assert.ErrorIs(t, uc.Delete(ctx, 999), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes y mascotas
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerUseCase_CRUD(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewCustomerUseCase(r.Customers)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CustomerRequest{
		Name: "Ana Costa", Email: "ana@email.com", BirthDate: "1990-05-20",
		Address: dto.AddressDTO{Street: "Rua A", Number: "10", City: "Santos"},
		Notes:   "  Prefiere contacto por WhatsApp ",
	})
	require.NoError(t, err)
	assert.Equal(t, "1990-05-20", c.BirthDate)
	assert.Equal(t, "Santos", c.Address.City)
	assert.Equal(t, "Prefiere contacto por WhatsApp", c.Notes)

	got, err := uc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Prefiere contacto por WhatsApp", got.Notes)

	_, err = uc.Create(ctx, dto.CustomerRequest{Name: "X", BirthDate: "20/05/1990"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx, "silva", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page.Total)

	upd, err := uc.Update(ctx, c.ID, dto.CustomerRequest{Name: "Ana Costa Lima"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Costa Lima", upd.Name)
	assert.Empty(t, upd.BirthDate)
	assert.Empty(t, upd.Notes)

	require.NoError(t, uc.Delete(ctx, c.ID))
	gone, err := uc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestPetUseCase_ClienteDebeExistir(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewPetUseCase(r.Pets, r.Customers)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.PetRequest{Name: "Mia", Species: "Gato", Sex: entity.PetSexFemale, CustomerID: 999})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p, err := uc.Create(ctx, dto.PetRequest{Name: "Mia", Species: "Gato", Sex: entity.PetSexFemale, CustomerID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.CustomerID)

	byOwner, err := uc.List(ctx, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, byOwner.Page.Total)

	_, err = uc.Update(ctx, p.ID, dto.PetRequest{Name: "Mia", Species: "Gato", Sex: entity.PetSexFemale, CustomerID: 998})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	moved, err := uc.Update(ctx, p.ID, dto.PetRequest{Name: "Mia", Species: "Gato", Sex: entity.PetSexFemale, CustomerID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved.CustomerID)
}

func TestSupplierUseCase_CRUD(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewSupplierUseCase(r.Suppliers)
	ctx := context.Background()

	s, err := uc.Create(ctx, dto.SupplierRequest{Name: "  Pet Food SA ", ProductsSupplied: "Snacks"})
	require.NoError(t, err)
	assert.Equal(t, "Pet Food SA", s.Name)

	list, err := uc.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 4, list.Page.Total)

	missing, err := uc.Update(ctx, 999, dto.SupplierRequest{Name: "x"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// ──────────────────────────────────────────────────────────────────────────────
// Citas
// ──────────────────────────────────────────────────────────────────────────────

func TestAppointmentUseCase_Transiciones(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewAppointmentUseCase(r.Appointments, r.Pets)
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.AppointmentRequest{
		Date: "2026-11-02", Time: "11:30", Service: "Baño", PetID: ptr(int64(3)), CustomerName: "João Santos",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", a.Status)
	assert.Equal(t, "Thor", a.PetName, "se completa desde la mascota")

	tests := []struct {
		name    string
		status  string
		wantErr error
		want    string
	}{
		{"pending a completed no permitido", "completed", domain.ErrInvalidTransition, ""},
		{"pending a confirmed", "confirmed", nil, "confirmed"},
		{"confirmed a pending no permitido", "pending", domain.ErrInvalidTransition, ""},
		{"confirmed a completed", "completed", nil, "completed"},
		{"completed es terminal", "cancelled", domain.ErrInvalidTransition, ""},
		{"estado desconocido", "done", domain.ErrInvalidInput, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.ChangeStatus(ctx, a.ID, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
		})
	}

	missing, err := uc.ChangeStatus(ctx, 999, "confirmed")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAppointmentUseCase_ValidacionesYListado(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewAppointmentUseCase(r.Appointments, r.Pets)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.AppointmentRequest{Date: "2026-11-02", Time: "25:00", Service: "Baño", CustomerName: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.AppointmentRequest{Date: "2026-11-02", Time: "10:00", Service: "Baño", PetID: ptr(int64(99)), CustomerName: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	today := time.Now().Format(dto.DateLayout)
	list, err := uc.List(ctx, today, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Page.Total)
	assert.Equal(t, "10:00", list.Items[0].Time)

	pending, err := uc.List(ctx, today, "pending", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, pending.Page.Total)

	_, err = uc.List(ctx, "", "done", 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos
// ──────────────────────────────────────────────────────────────────────────────

func TestExpenseUseCase_CreateYResumen(t *testing.T) {
	r := memory.NewRepos()
	uc := usecase.NewExpenseUseCase(r.Expenses)
	ctx := context.Background()

	in := dto.ExpenseRequest{Description: "Alquiler", Amount: decimal.RequireFromString("3000"), Date: "2026-03-01", Category: entity.ExpenseRent}
	_, err := uc.Create(ctx, in)
	require.NoError(t, err)
	in2 := dto.ExpenseRequest{Description: "Anuncios", Amount: decimal.RequireFromString("150.50"), Date: "2026-03-10", Category: entity.ExpenseMarketing}
	_, err = uc.Create(ctx, in2)
	require.NoError(t, err)
	in3 := dto.ExpenseRequest{Description: "Reparación", Amount: decimal.RequireFromString("49.50"), Date: "2026-03-12", Category: entity.ExpenseMarketing}
	_, err = uc.Create(ctx, in3)
	require.NoError(t, err)
	in4 := dto.ExpenseRequest{Description: "Abril", Amount: decimal.RequireFromString("999"), Date: "2026-04-01", Category: entity.ExpenseOther}
	_, err = uc.Create(ctx, in4)
	require.NoError(t, err)

	zero := in
	zero.Amount = decimal.Zero
	_, err = uc.Create(ctx, zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badCat := in
	badCat.Category = "taxes"
	_, err = uc.Create(ctx, badCat)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sum, err := uc.Summary(ctx, "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	assert.True(t, sum.Total.Equal(decimal.RequireFromString("3200")))
	require.Len(t, sum.ByCategory, 2)
	assert.Equal(t, entity.ExpenseRent, sum.ByCategory[0].Category)
	assert.Equal(t, entity.ExpenseMarketing, sum.ByCategory[1].Category)
	assert.Equal(t, 2, sum.ByCategory[1].Count)
	assert.True(t, sum.ByCategory[1].Total.Equal(decimal.RequireFromString("200")))

	_, err = uc.Summary(ctx, "2026-04-01", "2026-03-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDateRange_PorDefectoMesEnCurso(t *testing.T) {
	now := time.Date(2026, 3, 18, 15, 4, 0, 0, time.Local)
	from, to, err := usecase.DateRange("", "", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, 18, to.Day())
	assert.Equal(t, 23, to.Hour())

	_, to, err = usecase.DateRange("2026-01-01", "2026-01-31", now)
	require.NoError(t, err)
	assert.True(t, to.After(time.Date(2026, 1, 31, 23, 59, 0, 0, time.Local)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios y configuración
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUseCase_Unicidad(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewUserUseCase(r.Users)
	ctx := context.Background()

	in := dto.UserRequest{Name: "Carla", Email: "carla@petshop.com", Username: "carla", Role: "cashier"}
	u, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, u.Status)
	assert.Equal(t, "Cajero", u.RoleLabel)

	dupEmail := in
	dupEmail.Username = "carla2"
	dupEmail.Email = "MARIA@petshop.com"
	_, err = uc.Create(ctx, dupEmail)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	dupUser := in
	dupUser.Email = "otra@petshop.com"
	dupUser.Username = "Admin"
	_, err = uc.Create(ctx, dupUser)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	badRole := in
	badRole.Email, badRole.Username, badRole.Role = "x@petshop.com", "xx1", "manager"
	_, err = uc.Create(ctx, badRole)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// editar conservando su propio email/username no es duplicado
	in.Position = "Caja 2"
	upd, err := uc.Update(ctx, u.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Caja 2", upd.Position)

	assert.ErrorIs(t, uc.Delete(ctx, 1, 1), domain.ErrConflict)
	require.NoError(t, uc.Delete(ctx, 1, u.ID))
	assert.ErrorIs(t, uc.Delete(ctx, 1, u.ID), domain.ErrNotFound)
}

func TestSettingsUseCase(t *testing.T) {
	r := memory.NewRepos()
	defaults := *seed.DefaultSettings(time.Now())
	uc := usecase.NewSettingsUseCase(r.Settings, defaults)
	ctx := context.Background()

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PetShop Manager", got.StoreName)

	saved, err := uc.Update(ctx, dto.SettingsRequest{
		StoreName: "Mi Tienda",
		System:    dto.SystemDTO{Theme: "dark", Language: "es", Currency: "cop", Timezone: "America/Bogota"},
	})
	require.NoError(t, err)
	assert.Equal(t, "COP", saved.System.Currency)

	got, err = uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mi Tienda", got.StoreName)
	assert.Equal(t, "dark", got.System.Theme)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones
// ──────────────────────────────────────────────────────────────────────────────

func stockAlerts(items []dto.NotificationResponse) []dto.NotificationResponse {
	var out []dto.NotificationResponse
	for _, n := range items {
		if n.Type == string(entity.NotificationStock) {
			out = append(out, n)
		}
	}
	return out
}

func TestNotificationUseCase_DerivaAlertasDeStockBajo(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewNotificationUseCase(r.Notifications, r.Products, r.Settings)
	ctx := context.Background()

	feed, err := uc.List(ctx, false, 0, 0)
	require.NoError(t, err)
	alerts := stockAlerts(feed.Items)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Stock bajo", alerts[0].Title)
	assert.Contains(t, alerts[0].Message, "Comedero Automático")
	assert.False(t, alerts[0].Read)
	assert.Equal(t, 2, feed.Unread, "alerta de stock + cita de hoy")
	assert.Equal(t, 3, feed.Page.Total)

	again, err := uc.List(ctx, false, 0, 0)
	require.NoError(t, err)
	assert.Len(t, stockAlerts(again.Items), 1, "no se duplica mientras siga sin leer")

	read, err := uc.MarkRead(ctx, alerts[0].ID)
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.True(t, read.Read)

	feed, err = uc.List(ctx, false, 0, 0)
	require.NoError(t, err)
	assert.Len(t, stockAlerts(feed.Items), 1, "leída y sin cambios de stock no se repite")
	assert.Equal(t, 1, feed.Unread)

	require.NotNil(t, alerts[0].ProductID)
	require.NoError(t, r.Products.AdjustStock(ctx, *alerts[0].ProductID, -1))
	feed, err = uc.List(ctx, true, 0, 0)
	require.NoError(t, err)
	assert.Len(t, stockAlerts(feed.Items), 1)
	assert.Equal(t, 2, feed.Unread)
	assert.Contains(t, stockAlerts(feed.Items)[0].Message, "7 unidades")
}

func TestNotificationUseCase_ProductoAgotado(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewNotificationUseCase(r.Notifications, r.Products, r.Settings)
	ctx := context.Background()

	p, err := r.Products.GetBySKU(ctx, "PS-001")
	require.NoError(t, err)
	require.NoError(t, r.Products.AdjustStock(ctx, p.ID, -p.Stock))

	n, err := uc.SyncStockAlerts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	feed, err := uc.List(ctx, true, 0, 0)
	require.NoError(t, err)
	alerts := stockAlerts(feed.Items)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Producto agotado", alerts[0].Title)
}

func TestNotificationUseCase_RespetaConfiguracion(t *testing.T) {
	r := seeded(t)
	ctx := context.Background()
	s, err := r.Settings.Get(ctx)
	require.NoError(t, err)
	s.Notifications.LowStockAlerts = false
	require.NoError(t, r.Settings.Save(ctx, s))

	uc := usecase.NewNotificationUseCase(r.Notifications, r.Products, r.Settings)
	feed, err := uc.List(ctx, false, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, stockAlerts(feed.Items))
	assert.Equal(t, 1, feed.Unread)
}

func TestNotificationUseCase_MarcarTodas(t *testing.T) {
	r := seeded(t)
	uc := usecase.NewNotificationUseCase(r.Notifications, r.Products, r.Settings)
	ctx := context.Background()

	_, err := uc.List(ctx, false, 0, 0)
	require.NoError(t, err)
	out, err := uc.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Updated)
	assert.Zero(t, out.Unread)

	out, err = uc.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Zero(t, out.Updated)

	missing, err := uc.MarkRead(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
