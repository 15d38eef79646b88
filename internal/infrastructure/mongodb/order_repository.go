package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre la colección orders.
type OrderRepo struct {
	col *mongo.Collection
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{col: db.Collection(ordersCollection)}
}

// Create inserta la orden con todos sus snapshots embebidos.
func (r *OrderRepo) Create(order *entity.Order) error {
	_, err := r.col.InsertOne(context.Background(), order)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por id; nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var order entity.Order
	err := r.col.FindOne(context.Background(), bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &order, nil
}

// ListByCustomerEmail devuelve las órdenes de un customer (índice customer.email).
func (r *OrderRepo) ListByCustomerEmail(email string) ([]*entity.Order, error) {
	return r.find(bson.M{"customer.email": email})
}

// ListByTransporterEmail devuelve las órdenes asignadas a un transporter.
func (r *OrderRepo) ListByTransporterEmail(email string) ([]*entity.Order, error) {
	return r.find(bson.M{"transporter.email": email})
}

// Delete elimina la orden solo si customer.email coincide; devuelve el
// documento eliminado o nil si no hubo coincidencia.
func (r *OrderRepo) Delete(id, customerEmail string) (*entity.Order, error) {
	filter := bson.M{"_id": id, "customer.email": customerEmail}

	var order entity.Order
	err := r.col.FindOneAndDelete(context.Background(), filter).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete order: %w", err)
	}
	return &order, nil
}

func (r *OrderRepo) find(filter bson.M) ([]*entity.Order, error) {
	ctx := context.Background()
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Order
	for cursor.Next(ctx) {
		var order entity.Order
		if err := cursor.Decode(&order); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		list = append(list, &order)
	}
	return list, cursor.Err()
}
