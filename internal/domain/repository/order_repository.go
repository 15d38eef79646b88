package repository

import "github.com/spacelogix/spacelogix-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByCustomerEmail(email string) ([]*entity.Order, error)
	ListByTransporterEmail(email string) ([]*entity.Order, error)
	// Delete elimina la orden solo si customer.email coincide; devuelve la orden
	// eliminada o nil si no hubo coincidencia (inexistente y ajena son indistinguibles).
	Delete(id, customerEmail string) (*entity.Order, error)
}
