package memory

import (
	"sync"
	"time"

	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository implementación en memoria del puerto UserRepository,
// con la misma semántica de email único que el adaptador de MongoDB.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User // por id
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrUserTaken
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneUser(r.users[id]), nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) TouchUpdatedAt(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u.UpdatedAt = time.Now()
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}
