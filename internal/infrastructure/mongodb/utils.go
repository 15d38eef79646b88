package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Nombres de colecciones.
const (
	usersCollection    = "users"
	productsCollection = "products"
	ordersCollection   = "orders"
)

// orderedKey construye la clave de índice {field: direction}.
func orderedKey(field string, direction int) bson.D {
	return bson.D{{Key: field, Value: direction}}
}

// isDuplicateKey indica si err es una violación de índice único (E11000).
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
