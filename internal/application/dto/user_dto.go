package dto

import (
	"time"

	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
)

// EditUserRequest patch parcial del perfil. Punteros: solo los campos presentes
// en el body se aplican; un campo ausente se deja intacto, nunca se anula.
type EditUserRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Country *string `json:"country,omitempty"`
	City    *string `json:"city,omitempty"`
	Address *string `json:"address,omitempty"`
}

// UserResponse proyección pública de un usuario (sin hash de password).
type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Country   string    `json:"country,omitempty"`
	City      string    `json:"city,omitempty"`
	Address   string    `json:"address,omitempty"`
	Role      string    `json:"role"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse proyecta la entidad al DTO público.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Country:   u.Country,
		City:      u.City,
		Address:   u.Address,
		Role:      string(u.Role),
		UpdatedAt: u.UpdatedAt,
	}
}
