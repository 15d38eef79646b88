package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre la colección products.
type ProductRepo struct {
	col *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection(productsCollection)}
}

// Create inserta un producto nuevo. Un duplicate key del índice único de nombre
// se traduce a ErrProductExists.
func (r *ProductRepo) Create(product *entity.Product) error {
	_, err := r.col.InsertOne(context.Background(), product)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrProductExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.findOne(bson.M{"_id": id})
}

// GetByName obtiene un producto por nombre; nil si no existe.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.findOne(bson.M{"name": name})
}

// ListAll devuelve el catálogo completo.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	return r.find(bson.M{})
}

// ListBySupplierEmail devuelve los productos de un proveedor.
func (r *ProductRepo) ListBySupplierEmail(email string) ([]*entity.Product, error) {
	return r.find(bson.M{"supplier.email": email})
}

// Update reemplaza el documento del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	_, err := r.col.ReplaceOne(context.Background(), bson.M{"_id": product.ID}, product)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// DecrementStock descuenta qty unidades con un update condicional: el filtro
// exige stock >= qty, así el stock nunca queda negativo aunque haya órdenes
// concurrentes sobre el mismo producto. Devuelve false si no hubo coincidencia.
func (r *ProductRepo) DecrementStock(id string, qty int) (bool, error) {
	filter := bson.M{"_id": id, "stock": bson.M{"$gte": qty}}
	update := bson.M{
		"$inc": bson.M{"stock": -qty},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := r.col.UpdateOne(context.Background(), filter, update)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return res.MatchedCount == 1, nil
}

// IncrementStock repone qty unidades (compensación).
func (r *ProductRepo) IncrementStock(id string, qty int) error {
	update := bson.M{
		"$inc": bson.M{"stock": qty},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	_, err := r.col.UpdateOne(context.Background(), bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

// Delete elimina el producto si pertenece al proveedor; devuelve el documento
// eliminado o nil si no hubo coincidencia.
func (r *ProductRepo) Delete(id, supplierEmail string) (*entity.Product, error) {
	filter := bson.M{"_id": id, "supplier.email": supplierEmail}

	var product entity.Product
	err := r.col.FindOneAndDelete(context.Background(), filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepo) findOne(filter bson.M) (*entity.Product, error) {
	var product entity.Product
	err := r.col.FindOne(context.Background(), filter).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepo) find(filter bson.M) ([]*entity.Product, error) {
	ctx := context.Background()
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Product
	for cursor.Next(ctx) {
		var product entity.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		list = append(list, &product)
	}
	return list, cursor.Err()
}
