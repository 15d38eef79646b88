package usecase

import (
	"time"

	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
)

// UserUseCase perfil y edición parcial del usuario autenticado.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Update aplica un patch parcial al perfil: solo los campos presentes (punteros
// no nil) se escriben, cada uno sobre su propio destino.
func (uc *UserUseCase) Update(userID string, in dto.EditUserRequest) (*entity.User, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotExists
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Country != nil {
		user.Country = *in.Country
	}
	if in.City != nil {
		user.City = *in.City
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
