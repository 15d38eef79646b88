package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo. El stock solo se muta aquí por edición
// explícita del proveedor; el decremento por órdenes vive en OrderUseCase.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con el snapshot del proveedor capturado del caller.
// El nombre es único: el índice de la colección respalda el chequeo previo, y un
// duplicate key en el insert también se traduce a ErrProductExists.
func (uc *ProductUseCase) Create(supplier *entity.User, in dto.CreateProductRequest) (*entity.Product, error) {
	name := normalizeName(in.Name)
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProductExists
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: normalizeName(in.Description),
		Price:       in.Price,
		Currency:    entity.Currency(in.Currency),
		Stock:       in.Stock,
		Supplier: entity.Supplier{
			Name:    supplier.Name,
			Email:   supplier.Email,
			Phone:   supplier.Phone,
			Address: supplier.Address,
			City:    supplier.City,
			Country: supplier.Country,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto; ErrProductNotExists si no existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotExists
	}
	return product, nil
}

// List devuelve el catálogo según el rol: un customer ve todo; supplier y
// transporter ven solo los productos cuyo supplier.email es el suyo.
func (uc *ProductUseCase) List(role entity.Role, email string) ([]*entity.Product, error) {
	switch role {
	case entity.RoleCustomer:
		return uc.repo.ListAll()
	case entity.RoleSupplier, entity.RoleTransporter:
		return uc.repo.ListBySupplierEmail(email)
	default:
		return nil, domain.ErrForbidden
	}
}

// Update aplica un patch parcial a un producto del proveedor autenticado.
// ErrProductNotExists cubre tanto el producto inexistente como el ajeno.
func (uc *ProductUseCase) Update(id, supplierEmail string, in dto.EditProductRequest) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Supplier.Email != supplierEmail {
		return nil, domain.ErrProductNotExists
	}
	if in.Name != nil {
		product.Name = normalizeName(*in.Name)
	}
	if in.Description != nil {
		product.Description = normalizeName(*in.Description)
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Currency != nil {
		if !entity.ValidCurrency(*in.Currency) {
			return nil, domain.ErrInvalidInput
		}
		product.Currency = entity.Currency(*in.Currency)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina un producto del proveedor autenticado y lo devuelve.
func (uc *ProductUseCase) Delete(id, supplierEmail string) (*entity.Product, error) {
	product, err := uc.repo.Delete(id, supplierEmail)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotExists
	}
	return product, nil
}

// normalizeName replica la normalización del esquema: trim + minúsculas.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
