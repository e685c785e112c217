// Package seed carga el dataset de demostración de la tienda en cualquier
// implementación de los repositorios (memoria o PostgreSQL).
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PetShop-api/internal/domain/entity"
	"github.com/jhoicas/PetShop-api/internal/domain/repository"
)

// Repos repositorios a poblar.
type Repos struct {
	Products     repository.ProductRepository
	Customers    repository.CustomerRepository
	Pets         repository.PetRepository
	Suppliers    repository.SupplierRepository
	Appointments repository.AppointmentRepository
	Expenses     repository.ExpenseRepository
	Sales        repository.SaleRepository
	Users        repository.UserRepository
	Settings     repository.SettingsRepository
	Movements    repository.InventoryMovementRepository

	Notifications repository.NotificationRepository
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(t time.Time, offset int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, t.Location())
}

func at(t time.Time, offset, hour, minute int) time.Time {
	return day(t, offset).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// Products catálogo inicial del inventario.
func Products(now time.Time) []entity.Product {
	rows := []entity.Product{
		{Name: "Alimento Premium Perros 15kg", Brand: "Royal Canin", Category: "Alimento", SKU: "RC-001", Barcode: "7891234567890", Price: money("189.90"), Cost: money("120.00"), Stock: 45, MinStock: 20},
		{Name: "Alimento Premium Gatos 10kg", Brand: "Royal Canin", Category: "Alimento", SKU: "RC-002", Barcode: "7891234567891", Price: money("159.90"), Cost: money("100.00"), Stock: 32, MinStock: 25},
		{Name: "Collar Antipulgas", Brand: "Seresto", Category: "Accesorios", SKU: "SE-001", Barcode: "7891234567892", Price: money("45.00"), Cost: money("28.00"), Stock: 67, MinStock: 30},
		{Name: "Juguete Mordedor", Brand: "Kong", Category: "Juguetes", SKU: "KG-001", Barcode: "7891234567893", Price: money("29.90"), Cost: money("15.00"), Stock: 89, MinStock: 40},
		{Name: "Shampoo Antipulgas 500ml", Brand: "Pet Clean", Category: "Higiene", SKU: "PC-001", Barcode: "7891234567894", Price: money("34.90"), Cost: money("20.00"), Stock: 54, MinStock: 30},
		{Name: "Cama Grande", Brand: "Furacão Pet", Category: "Accesorios", SKU: "FP-001", Barcode: "7891234567895", Price: money("129.00"), Cost: money("80.00"), Stock: 23, MinStock: 15},
		{Name: "Comedero Automático", Brand: "PetSafe", Category: "Accesorios", SKU: "PS-001", Barcode: "7891234567896", Price: money("199.00"), Cost: money("130.00"), Stock: 8, MinStock: 10},
		{Name: "Antiparasitario 4 comprimidos", Brand: "Drontal", Category: "Medicamentos", SKU: "DR-001", Barcode: "7891234567897", Price: money("42.50"), Cost: money("25.00"), Stock: 78, MinStock: 50},
	}
	for i := range rows {
		rows[i].CreatedAt = now
		rows[i].UpdatedAt = now
	}
	return rows
}

// Load inserta el dataset completo. Los ids se asignan en orden de inserción.
func Load(ctx context.Context, r Repos, now time.Time) error {
	products := Products(now)
	for i := range products {
		if err := r.Products.Create(ctx, &products[i]); err != nil {
			return fmt.Errorf("seed producto %s: %w", products[i].SKU, err)
		}
	}

	customers := []entity.Customer{
		{Name: "Maria Silva", Phone: "(11) 98765-4321", Email: "maria.silva@email.com", Address: entity.Address{Street: "Rua das Flores", Number: "123", District: "Centro", City: "São Paulo"}},
		{Name: "João Santos", Phone: "(11) 97654-3210", Email: "joao.santos@email.com", Address: entity.Address{Street: "Av. Paulista", Number: "1000", Complement: "Apto 52", District: "Bela Vista", City: "São Paulo"}},
		{Name: "Clínica Vet Amigo", Phone: "(11) 3333-4444", Email: "contato@vetamigo.com", CompanyName: "Vet Amigo Ltda", TradeName: "Clínica Vet Amigo", Notes: "Compra mensual para la clínica; factura a nombre de la empresa.", Address: entity.Address{Street: "Rua Augusta", Number: "500", District: "Consolação", City: "São Paulo"}},
	}
	for i := range customers {
		customers[i].CreatedAt, customers[i].UpdatedAt = now, now
		if err := r.Customers.Create(ctx, &customers[i]); err != nil {
			return fmt.Errorf("seed cliente: %w", err)
		}
	}

	pets := []entity.Pet{
		{Name: "Rex", Species: "Perro", Breed: "Labrador", Age: 3, Sex: entity.PetSexMale, CustomerID: customers[0].ID, Notes: "Alérgico a pollo"},
		{Name: "Luna", Species: "Gato", Breed: "Siamés", Age: 2, Sex: entity.PetSexFemale, CustomerID: customers[0].ID},
		{Name: "Thor", Species: "Perro", Breed: "Bulldog Francés", Age: 5, Sex: entity.PetSexMale, CustomerID: customers[1].ID},
	}
	for i := range pets {
		pets[i].CreatedAt, pets[i].UpdatedAt = now, now
		if err := r.Pets.Create(ctx, &pets[i]); err != nil {
			return fmt.Errorf("seed mascota: %w", err)
		}
	}

	suppliers := []entity.Supplier{
		{Name: "Distribuidora Pet Plus", Phone: "(11) 3456-7890", Email: "contato@petplus.com", ProductsSupplied: "Alimentos, snacks"},
		{Name: "Acessórios Pet Brasil", Phone: "(11) 3456-7891", Email: "vendas@acessoriospet.com", ProductsSupplied: "Collares, camas, juguetes"},
		{Name: "FarmaVet Distribuidora", Phone: "(11) 3456-7892", Email: "pedidos@farmavet.com", ProductsSupplied: "Medicamentos, antiparasitarios"},
	}
	for i := range suppliers {
		suppliers[i].CreatedAt, suppliers[i].UpdatedAt = now, now
		if err := r.Suppliers.Create(ctx, &suppliers[i]); err != nil {
			return fmt.Errorf("seed proveedor: %w", err)
		}
	}

	appts := []entity.Appointment{
		{Date: day(now, 0), Time: "10:00", Service: "Baño y peluquería", PetID: &pets[0].ID, PetName: "Rex", CustomerName: "Maria Silva", Status: entity.AppointmentConfirmed, Notes: "Corte higiénico"},
		{Date: day(now, 0), Time: "14:00", Service: "Consulta veterinaria", PetID: &pets[1].ID, PetName: "Luna", CustomerName: "Maria Silva", Status: entity.AppointmentPending},
		{Date: day(now, 1), Time: "09:00", Service: "Baño", PetID: &pets[2].ID, PetName: "Thor", CustomerName: "João Santos", Status: entity.AppointmentConfirmed},
	}
	for i := range appts {
		appts[i].CreatedAt, appts[i].UpdatedAt = now, now
		if err := r.Appointments.Create(ctx, &appts[i]); err != nil {
			return fmt.Errorf("seed cita: %w", err)
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	expenses := []entity.Expense{
		{Description: "Alquiler del mes", Amount: money("3000.00"), Date: monthStart, Category: entity.ExpenseRent},
		{Description: "Compra de alimentos", Amount: money("4500.00"), Date: monthStart, Category: entity.ExpenseStockPurchase},
		{Description: "Salarios", Amount: money("6000.00"), Date: monthStart, Category: entity.ExpenseSalaries},
		{Description: "Cuenta de luz", Amount: money("350.00"), Date: monthStart, Category: entity.ExpenseElectricity},
		{Description: "Cuenta de agua", Amount: money("180.00"), Date: monthStart, Category: entity.ExpenseWater},
	}
	for i := range expenses {
		expenses[i].CreatedAt, expenses[i].UpdatedAt = now, now
		if err := r.Expenses.Create(ctx, &expenses[i]); err != nil {
			return fmt.Errorf("seed gasto: %w", err)
		}
	}

	hired := day(now, -200)
	users := []entity.StaffUser{
		{Name: "Administrador", Phone: "(11) 91234-0000", Email: "admin@petshop.com", Username: "admin", Role: entity.RoleAdmin, Status: entity.UserStatusActive},
		{Name: "Maria Silva", Phone: "(11) 98765-1111", Email: "maria@petshop.com", Username: "maria", Role: entity.RoleEmployee, Status: entity.UserStatusActive, Position: "Atención al cliente", HiredAt: &hired},
		{Name: "João Santos", Phone: "(11) 97654-2222", Email: "joao@petshop.com", Username: "joao", Role: entity.RoleCashier, Status: entity.UserStatusActive, Position: "Cajero", HiredAt: &hired},
	}
	for i := range users {
		users[i].CreatedAt, users[i].UpdatedAt = now, now
		if err := r.Users.Create(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed usuario %s: %w", users[i].Username, err)
		}
	}

	item := func(p entity.Product, qty int) entity.SaleItem {
		return entity.SaleItem{ProductID: p.ID, Name: p.Name, Category: p.Category, Quantity: qty, UnitPrice: p.Price, UnitCost: p.Cost}
	}
	sales := []entity.Sale{
		{CashierID: 3, CashierName: "João Santos", Items: []entity.SaleItem{item(products[0], 1), item(products[2], 1)}, PaymentMethod: entity.PaymentCreditCard, CreatedAt: at(now, 0, 9, 15)},
		{CashierID: 3, CashierName: "João Santos", Items: []entity.SaleItem{item(products[3], 3)}, PaymentMethod: entity.PaymentCash, CreatedAt: at(now, -1, 11, 0)},
		{CashierID: 2, CashierName: "Maria Silva", CustomerName: "Maria Silva", Items: []entity.SaleItem{item(products[1], 1), item(products[2], 2)}, PaymentMethod: entity.PaymentPix, CreatedAt: at(now, -1, 14, 20)},
		{CashierID: 3, CashierName: "João Santos", Items: []entity.SaleItem{item(products[6], 1)}, PaymentMethod: entity.PaymentDebitCard, CreatedAt: at(now, -2, 16, 45)},
		{CashierID: 2, CashierName: "Maria Silva", Items: []entity.SaleItem{item(products[5], 1), item(products[7], 2)}, PaymentMethod: entity.PaymentCreditCard, CreatedAt: at(now, -3, 9, 30)},
	}
	for i := range sales {
		total := decimal.Zero
		for _, it := range sales[i].Items {
			total = total.Add(it.Subtotal())
		}
		sales[i].Total = total
		if err := r.Sales.Create(ctx, &sales[i]); err != nil {
			return fmt.Errorf("seed venta: %w", err)
		}
	}

	if r.Notifications != nil {
		notes := []entity.Notification{
			{Type: entity.NotificationCustomer, Title: "Cita hoy", Message: "Baño y peluquería - Rex a las 10:00", CreatedAt: at(now, 0, 8, 0)},
			{Type: entity.NotificationSystem, Title: "Bienvenido", Message: "La tienda está lista para registrar ventas", Read: true, CreatedAt: at(now, -1, 8, 0)},
		}
		for i := range notes {
			if err := r.Notifications.Create(ctx, &notes[i]); err != nil {
				return fmt.Errorf("seed notificación: %w", err)
			}
		}
	}

	return r.Settings.Save(ctx, DefaultSettings(now))
}

// DefaultSettings configuración inicial de la tienda.
func DefaultSettings(now time.Time) *entity.StoreSettings {
	return &entity.StoreSettings{
		StoreName: "PetShop Manager",
		Address:   "Rua das Flores, 123",
		Phone:     "(11) 98765-4321",
		Email:     "contato@petshop.com",
		TaxID:     "12.345.678/0001-90",
		Notifications: entity.NotificationSettings{
			SalesEmail: true, StockEmail: true, CustomerSMS: false, LowStockAlerts: true,
		},
		System: entity.SystemSettings{
			Theme: "light", Language: "pt-BR", Currency: "BRL", Timezone: "America/Sao_Paulo",
		},
		UpdatedAt: now,
	}
}
