package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre la colección users.
type UserRepo struct {
	col *mongo.Collection
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection(usersCollection)}
}

// Create inserta un usuario nuevo. Un duplicate key del índice único de email
// se traduce a ErrUserTaken.
func (r *UserRepo) Create(user *entity.User) error {
	_, err := r.col.InsertOne(context.Background(), user)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrUserTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por id; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.findOne(bson.M{"_id": id})
}

// GetByEmail obtiene un usuario por email; nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.findOne(bson.M{"email": email})
}

// Update reemplaza el documento del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	_, err := r.col.ReplaceOne(context.Background(), bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// TouchUpdatedAt actualiza solo updatedAt y devuelve el documento resultante;
// nil si el email no existe.
func (r *UserRepo) TouchUpdatedAt(email string) (*entity.User, error) {
	update := bson.M{"$set": bson.M{"updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user entity.User
	err := r.col.FindOneAndUpdate(context.Background(), bson.M{"email": email}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("touch user: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) findOne(filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.col.FindOne(context.Background(), filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
