package entity

import "time"

// Role clase de capacidad de un usuario autenticado. Enum cerrado: todo punto de
// autorización hace switch exhaustivo sobre estos valores.
type Role string

// Roles válidos para User.
const (
	RoleCustomer    Role = "customer"
	RoleSupplier    Role = "supplier"
	RoleTransporter Role = "transporter"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleCustomer, RoleSupplier, RoleTransporter:
		return true
	}
	return false
}

// User representa un usuario del sistema. El email es la llave de login (índice único).
type User struct {
	ID             string    `bson:"_id,omitempty"`
	Name           string    `bson:"name"`
	Email          string    `bson:"email"`
	HashedPassword string    `bson:"hashedPassword"` // bcrypt hash, nunca plano después de persistir
	Role           Role      `bson:"role"`
	Phone          string    `bson:"phone,omitempty"`
	Address        string    `bson:"address,omitempty"`
	City           string    `bson:"city,omitempty"`
	Country        string    `bson:"country,omitempty"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}
