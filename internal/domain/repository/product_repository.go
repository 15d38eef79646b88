package repository

import "github.com/spacelogix/spacelogix-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	ListBySupplierEmail(email string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementStock descuenta qty unidades solo si el stock alcanza
	// (filtro stock >= qty); devuelve false si la condición no se cumplió.
	DecrementStock(id string, qty int) (bool, error)
	// IncrementStock repone qty unidades (compensación de un decremento previo).
	IncrementStock(id string, qty int) error
	// Delete elimina el producto solo si pertenece al proveedor indicado;
	// devuelve el producto eliminado o nil si no hubo coincidencia.
	Delete(id, supplierEmail string) (*entity.Product, error)
}
