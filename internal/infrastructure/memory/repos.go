package memory

import "github.com/jhoicas/PetShop-api/internal/infrastructure/seed"

// NewRepos construye todos los repositorios en memoria, vacíos. Los borrados replican
// las claves foráneas del esquema: cliente → mascotas (cascade), mascota → citas
// (set null), proveedor → productos (set null), producto → kardex y alertas (cascade).
func NewRepos() seed.Repos {
	products := NewProductRepository()
	customers := NewCustomerRepository()
	pets := NewPetRepository()
	suppliers := NewSupplierRepository()
	appointments := NewAppointmentRepository()
	movements := NewInventoryMovementRepository()
	notifications := NewNotificationRepository()

	customers.onDelete(pets.deleteByCustomer)
	pets.onDelete(appointments.clearPet)
	suppliers.onDelete(products.clearSupplier)
	products.onDelete(movements.deleteByProduct)
	products.onDelete(notifications.deleteByProduct)

	return seed.Repos{
		Products:     products,
		Customers:    customers,
		Pets:         pets,
		Suppliers:    suppliers,
		Appointments: appointments,
		Expenses:     NewExpenseRepository(),
		Sales:        NewSaleRepository(),
		Users:        NewUserRepository(),
		Settings:     NewSettingsRepository(),
		Movements:    movements,

		Notifications: notifications,
	}
}
