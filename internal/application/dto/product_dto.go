package dto

import (
	"time"

	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. El snapshot del proveedor
// se inyecta desde el usuario autenticado, no viene en el body.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"` // cop | usd | eur
	Stock       int     `json:"stock"`
}

// EditProductRequest patch parcial de un producto: solo los campos presentes se aplican.
type EditProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

// ProductResponse proyección pública de un producto.
type ProductResponse struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int             `json:"stock"`
	Supplier    entity.Supplier `json:"supplier"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ToProductResponse proyecta la entidad al DTO público.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    string(p.Currency),
		Stock:       p.Stock,
		Supplier:    p.Supplier,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses proyecta una lista de entidades.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *ToProductResponse(p))
	}
	return out
}
