package memory

import (
	"sync"

	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implementación en memoria del puerto OrderRepository.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order // por id
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*entity.Order)}
}

func (r *OrderRepository) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneOrder(r.orders[id]), nil
}

func (r *OrderRepository) ListByCustomerEmail(email string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Order
	for _, o := range r.orders {
		if o.Customer.Email == email {
			list = append(list, cloneOrder(o))
		}
	}
	return list, nil
}

func (r *OrderRepository) ListByTransporterEmail(email string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Order
	for _, o := range r.orders {
		if o.Transporter.Email == email {
			list = append(list, cloneOrder(o))
		}
	}
	return list, nil
}

func (r *OrderRepository) Delete(id, customerEmail string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.Customer.Email != customerEmail {
		return nil, nil
	}
	delete(r.orders, id)
	return cloneOrder(o), nil
}

func cloneOrder(o *entity.Order) *entity.Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Products = append([]entity.OrderLine(nil), o.Products...)
	return &clone
}
