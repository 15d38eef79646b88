package memory

import (
	"sync"
	"time"

	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación en memoria del puerto ProductRepository.
// Replica la semántica del adaptador de MongoDB: nombre único y decremento
// condicional de stock.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*entity.Product // por id
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]*entity.Product)}
}

func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Name == product.Name {
			return domain.ErrProductExists
		}
	}
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneProduct(r.products[id]), nil
}

func (r *ProductRepository) GetByName(name string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.Name == name {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) ListAll() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, cloneProduct(p))
	}
	return list, nil
}

func (r *ProductRepository) ListBySupplierEmail(email string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.products {
		if p.Supplier.Email == email {
			list = append(list, cloneProduct(p))
		}
	}
	return list, nil
}

func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *ProductRepository) DecrementStock(id string, qty int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	p.UpdatedAt = time.Now()
	return true, nil
}

func (r *ProductRepository) IncrementStock(id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.Stock += qty
		p.UpdatedAt = time.Now()
	}
	return nil
}

func (r *ProductRepository) Delete(id, supplierEmail string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.Supplier.Email != supplierEmail {
		return nil, nil
	}
	delete(r.products, id)
	return cloneProduct(p), nil
}

func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
