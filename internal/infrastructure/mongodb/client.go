package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spacelogix/spacelogix-api/pkg/config"
)

// Connect abre el cliente de MongoDB, verifica conectividad con un ping y
// devuelve el handle de la base configurada.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	opts := options.Client().ApplyURI(cfg.ConnectionString())
	if cfg.User != "" || cfg.Password != "" {
		opts = opts.SetAuth(options.Credential{
			AuthSource: cfg.Database,
			Username:   cfg.User,
			Password:   cfg.Password,
		})
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(pingCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices de las colecciones: email único en users,
// nombre único en products, y los índices de búsqueda de órdenes por
// customer.email y transporter.email.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: orderedKey("email", 1), Options: unique,
	}); err != nil {
		return fmt.Errorf("index users.email: %w", err)
	}
	if _, err := db.Collection(productsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: orderedKey("name", 1), Options: unique,
	}); err != nil {
		return fmt.Errorf("index products.name: %w", err)
	}
	if _, err := db.Collection(ordersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: orderedKey("customer.email", 1)},
		{Keys: orderedKey("transporter.email", 1)},
	}); err != nil {
		return fmt.Errorf("index orders: %w", err)
	}
	return nil
}
