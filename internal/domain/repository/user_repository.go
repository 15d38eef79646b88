package repository

import "github.com/spacelogix/spacelogix-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// TouchUpdatedAt actualiza solo la marca de tiempo del usuario (signout).
	TouchUpdatedAt(email string) (*entity.User, error)
}
