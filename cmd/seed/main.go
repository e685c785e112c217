// seed genera la migración SQL con el dataset demo de la tienda (productos, clientes,
// mascotas, proveedores, citas, gastos, ventas, personal, notificaciones y configuración).
//
// Uso: go run ./cmd/seed [fecha-referencia YYYY-MM-DD]
// Las fechas relativas del dataset (ventas de hoy, citas de mañana...) se fijan
// respecto de la fecha de referencia, por defecto hoy.
// Escribe: internal/infrastructure/postgres/migrations/003_seed_demo.sql
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/PetShop-api/internal/domain/repository"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/memory"
	"github.com/jhoicas/PetShop-api/internal/infrastructure/seed"
)

const (
	tsLayout   = "2006-01-02 15:04:05-07:00"
	dateLayout = "2006-01-02"
)

func main() {
	now := time.Now()
	if len(os.Args) > 1 {
		ref, err := time.ParseInLocation(dateLayout, os.Args[1], time.Local)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fecha de referencia inválida: %v\n", err)
			os.Exit(1)
		}
		now = ref.Add(12 * time.Hour)
	}

	ctx := context.Background()
	repos := memory.NewRepos()
	if err := seed.Load(ctx, repos, now); err != nil {
		fmt.Fprintf(os.Stderr, "Cargar dataset: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "003_seed_demo.sql")
	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n, err := writeSeed(ctx, w, repos, now)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar SQL: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir archivo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d filas\n", outPath, n)
}

// writeSeed escribe los INSERT con ids explícitos y ajusta las secuencias al final.
func writeSeed(ctx context.Context, w io.Writer, r seed.Repos, now time.Time) (int, error) {
	rows := 0
	fmt.Fprintf(w, "-- Dataset demo de la tienda\n-- Generado por cmd/seed con fecha de referencia %s\n\n", now.Format(dateLayout))

	suppliers, _, err := r.Suppliers.List(ctx, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("proveedores: %w", err)
	}
	fmt.Fprintln(w, "-- 1. Proveedores")
	for _, s := range suppliers {
		fmt.Fprintf(w, "INSERT INTO suppliers (id, name, phone, email, products_supplied, created_at, updated_at) VALUES (%d, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			s.ID, quote(s.Name), quote(s.Phone), quote(s.Email), quote(s.ProductsSupplied), ts(s.CreatedAt), ts(s.UpdatedAt))
		rows++
	}

	products, _, err := r.Products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return 0, fmt.Errorf("productos: %w", err)
	}
	fmt.Fprintln(w, "\n-- 2. Productos")
	for _, p := range products {
		supplier := "NULL"
		if p.SupplierID != nil {
			supplier = fmt.Sprint(*p.SupplierID)
		}
		barcode := "NULL"
		if p.Barcode != "" {
			barcode = quote(p.Barcode)
		}
		fmt.Fprintf(w, "INSERT INTO products (id, name, brand, category, sku, barcode, price, cost, stock, min_stock, supplier_id, created_at, updated_at) VALUES (%d, %s, %s, %s, %s, %s, %s, %s, %d, %d, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			p.ID, quote(p.Name), quote(p.Brand), quote(p.Category), quote(p.SKU), barcode,
			p.Price.StringFixed(2), p.Cost.StringFixed(2), p.Stock, p.MinStock, supplier, ts(p.CreatedAt), ts(p.UpdatedAt))
		rows++
	}

	customers, _, err := r.Customers.List(ctx, "", 0, 0)
	if err != nil {
		return 0, fmt.Errorf("clientes: %w", err)
	}
	fmt.Fprintln(w, "\n-- 3. Clientes")
	for _, c := range customers {
		birth := "NULL"
		if c.BirthDate != nil {
			birth = quote(c.BirthDate.Format(dateLayout))
		}
		fmt.Fprintf(w, "INSERT INTO customers (id, name, phone, email, street, number, complement, district, city, birth_date, company_name, trade_name, notes, created_at, updated_at) VALUES (%d, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			c.ID, quote(c.Name), quote(c.Phone), quote(c.Email),
			quote(c.Address.Street), quote(c.Address.Number), quote(c.Address.Complement), quote(c.Address.District), quote(c.Address.City),
			birth, quote(c.CompanyName), quote(c.TradeName), quote(c.Notes), ts(c.CreatedAt), ts(c.UpdatedAt))
		rows++
	}

	pets, _, err := r.Pets.List(ctx, 0, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("mascotas: %w", err)
	}
	fmt.Fprintln(w, "\n-- 4. Mascotas")
	for _, p := range pets {
		fmt.Fprintf(w, "INSERT INTO pets (id, name, species, breed, age, sex, customer_id, notes, created_at, updated_at) VALUES (%d, %s, %s, %s, %d, %s, %d, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			p.ID, quote(p.Name), quote(p.Species), quote(p.Breed), p.Age, quote(p.Sex), p.CustomerID, quote(p.Notes), ts(p.CreatedAt), ts(p.UpdatedAt))
		rows++
	}

	appointments, _, err := r.Appointments.List(ctx, repository.AppointmentFilter{})
	if err != nil {
		return 0, fmt.Errorf("citas: %w", err)
	}
	fmt.Fprintln(w, "\n-- 5. Citas")
	for _, a := range appointments {
		pet := "NULL"
		if a.PetID != nil {
			pet = fmt.Sprint(*a.PetID)
		}
		fmt.Fprintf(w, "INSERT INTO appointments (id, date, time, service, pet_id, pet_name, customer_name, status, notes, created_at, updated_at) VALUES (%d, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			a.ID, quote(a.Date.Format(dateLayout)), quote(a.Time), quote(a.Service), pet, quote(a.PetName), quote(a.CustomerName),
			quote(string(a.Status)), quote(a.Notes), ts(a.CreatedAt), ts(a.UpdatedAt))
		rows++
	}

	expenses, _, err := r.Expenses.List(ctx, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("gastos: %w", err)
	}
	fmt.Fprintln(w, "\n-- 6. Gastos")
	for _, e := range expenses {
		fmt.Fprintf(w, "INSERT INTO expenses (id, description, amount, date, category, created_at, updated_at) VALUES (%d, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			e.ID, quote(e.Description), e.Amount.StringFixed(2), quote(e.Date.Format(dateLayout)), quote(e.Category), ts(e.CreatedAt), ts(e.UpdatedAt))
		rows++
	}

	sales, err := r.Sales.ListBetween(ctx, time.Time{}, now.AddDate(1, 0, 0))
	if err != nil {
		return 0, fmt.Errorf("ventas: %w", err)
	}
	fmt.Fprintln(w, "\n-- 7. Ventas y sus líneas")
	for i := len(sales) - 1; i >= 0; i-- {
		s := sales[i]
		fmt.Fprintf(w, "INSERT INTO sales (id, cashier_id, cashier_name, customer_name, total, payment_method, created_at) VALUES (%d, %d, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			s.ID, s.CashierID, quote(s.CashierName), quote(s.CustomerName), s.Total.StringFixed(2), quote(s.PaymentMethod), ts(s.CreatedAt))
		for line, it := range s.Items {
			fmt.Fprintf(w, "INSERT INTO sale_items (sale_id, line, product_id, name, category, quantity, unit_price, unit_cost) VALUES (%d, %d, %d, %s, %s, %d, %s, %s) ON CONFLICT (sale_id, line) DO NOTHING;\n",
				s.ID, line+1, it.ProductID, quote(it.Name), quote(it.Category), it.Quantity, it.UnitPrice.StringFixed(2), it.UnitCost.StringFixed(2))
			rows++
		}
		rows++
	}

	users, _, err := r.Users.List(ctx, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("usuarios: %w", err)
	}
	fmt.Fprintln(w, "\n-- 8. Personal")
	for _, u := range users {
		hired := "NULL"
		if u.HiredAt != nil {
			hired = quote(u.HiredAt.Format(dateLayout))
		}
		fmt.Fprintf(w, "INSERT INTO staff_users (id, name, phone, email, username, role, status, position, hired_at, created_at, updated_at) VALUES (%d, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			u.ID, quote(u.Name), quote(u.Phone), quote(u.Email), quote(u.Username), quote(string(u.Role)), quote(u.Status), quote(u.Position), hired, ts(u.CreatedAt), ts(u.UpdatedAt))
		rows++
	}

	if r.Notifications != nil {
		notes, _, err := r.Notifications.List(ctx, repository.NotificationFilter{})
		if err != nil {
			return 0, fmt.Errorf("notificaciones: %w", err)
		}
		fmt.Fprintln(w, "\n-- 9. Notificaciones")
		for i := len(notes) - 1; i >= 0; i-- {
			n := notes[i]
			product := "NULL"
			if n.ProductID != nil {
				product = fmt.Sprint(*n.ProductID)
			}
			fmt.Fprintf(w, "INSERT INTO notifications (id, type, title, message, product_id, read, created_at) VALUES (%d, %s, %s, %s, %s, %t, %s) ON CONFLICT (id) DO NOTHING;\n",
				n.ID, quote(string(n.Type)), quote(n.Title), quote(n.Message), product, n.Read, ts(n.CreatedAt))
			rows++
		}
	}

	st, err := r.Settings.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("configuración: %w", err)
	}
	if st != nil {
		notif, err := json.Marshal(st.Notifications)
		if err != nil {
			return 0, err
		}
		sys, err := json.Marshal(st.System)
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(w, "\n-- 10. Configuración")
		fmt.Fprintf(w, "INSERT INTO store_settings (id, store_name, address, phone, email, tax_id, notifications, system, updated_at) VALUES (1, %s, %s, %s, %s, %s, %s, %s, %s) ON CONFLICT (id) DO NOTHING;\n",
			quote(st.StoreName), quote(st.Address), quote(st.Phone), quote(st.Email), quote(st.TaxID), quote(string(notif)), quote(string(sys)), ts(st.UpdatedAt))
		rows++
	}

	fmt.Fprintln(w, "\n-- 11. Secuencias")
	for _, table := range []string{"suppliers", "products", "customers", "pets", "appointments", "expenses", "sales", "staff_users", "notifications"} {
		fmt.Fprintf(w, "SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1));\n", table, table)
	}
	return rows, nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func ts(t time.Time) string {
	if t.IsZero() {
		return "now()"
	}
	return quote(t.Format(tsLayout))
}

// findModuleRoot sube directorios hasta encontrar go.mod.
func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
}
