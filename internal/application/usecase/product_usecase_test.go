package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/application/usecase"
	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/infrastructure/memory"
)

func supplier() *entity.User {
	return &entity.User{
		ID:      "s-1",
		Name:    "proveedor uno",
		Email:   "sup@b.com",
		Role:    entity.RoleSupplier,
		Phone:   "3109876543",
		Address: "cra 7 # 8-9",
		City:    "medellín",
		Country: "colombia",
	}
}

func createReq(name string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        name,
		Description: "descripción",
		Price:       25.5,
		Currency:    "cop",
		Stock:       10,
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearProducto_CapturaSnapshotDelProveedor(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	product, err := uc.Create(supplier(), createReq("Café Premium"))
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "café premium", product.Name, "nombre normalizado a minúsculas")
	assert.Equal(t, "sup@b.com", product.Supplier.Email)
	assert.Equal(t, "medellín", product.Supplier.City)
}

func TestCrearProducto_NombreDuplicado_RetornaProductExists(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	_, err := uc.Create(supplier(), createReq("café"))
	require.NoError(t, err)

	_, err = uc.Create(supplier(), createReq("  CAFÉ  "))
	assert.ErrorIs(t, err, domain.ErrProductExists, "el duplicado se detecta tras normalizar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestObtenerProducto_Inexistente_RetornaProductNotExists(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotExists)
}

func TestListarProductos_PorRol(t *testing.T) {
	repo := memory.NewProductRepository()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(supplier(), createReq("café"))
	require.NoError(t, err)

	otro := supplier()
	otro.Email = "otro@b.com"
	_, err = uc.Create(otro, createReq("panela"))
	require.NoError(t, err)

	todos, err := uc.List(entity.RoleCustomer, "cliente@b.com")
	require.NoError(t, err)
	assert.Len(t, todos, 2, "un customer ve el catálogo completo")

	propios, err := uc.List(entity.RoleSupplier, "sup@b.com")
	require.NoError(t, err)
	require.Len(t, propios, 1)
	assert.Equal(t, "café", propios[0].Name)

	_, err = uc.List(entity.Role("desconocido"), "x@b.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestEditarProducto_SoloCamposPresentes(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	product, err := uc.Create(supplier(), createReq("café"))
	require.NoError(t, err)

	updated, err := uc.Update(product.ID, "sup@b.com", dto.EditProductRequest{
		Price: floatPtr(30),
		Stock: intPtr(99),
	})
	require.NoError(t, err)

	assert.Equal(t, 30.0, updated.Price)
	assert.Equal(t, 99, updated.Stock)
	assert.Equal(t, "café", updated.Name, "los campos ausentes no se tocan")
	assert.Equal(t, "descripción", updated.Description)
	assert.Equal(t, entity.CurrencyCOP, updated.Currency)
}

func TestEditarProducto_ValoresInvalidos_RetornaInvalidInput(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	product, err := uc.Create(supplier(), createReq("café"))
	require.NoError(t, err)

	_, err = uc.Update(product.ID, "sup@b.com", dto.EditProductRequest{Price: floatPtr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(product.ID, "sup@b.com", dto.EditProductRequest{Stock: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(product.ID, "sup@b.com", dto.EditProductRequest{Currency: strPtr("btc")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEditarProducto_Ajeno_IndistinguibleDeInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	product, err := uc.Create(supplier(), createReq("café"))
	require.NoError(t, err)

	_, errAjeno := uc.Update(product.ID, "otro@b.com", dto.EditProductRequest{Price: floatPtr(1)})
	_, errInexistente := uc.Update("no-existe", "otro@b.com", dto.EditProductRequest{Price: floatPtr(1)})

	assert.ErrorIs(t, errAjeno, domain.ErrProductNotExists)
	assert.Equal(t, errInexistente, errAjeno, "producto ajeno e inexistente responden igual")
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminarProducto_Propietario_DevuelveElProducto(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	product, err := uc.Create(supplier(), createReq("café"))
	require.NoError(t, err)

	deleted, err := uc.Delete(product.ID, "sup@b.com")
	require.NoError(t, err)
	assert.Equal(t, product.ID, deleted.ID)

	_, err = uc.GetByID(product.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotExists)
}

func TestEliminarProducto_Ajeno_RetornaProductNotExists(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository())

	product, err := uc.Create(supplier(), createReq("café"))
	require.NoError(t, err)

	_, err = uc.Delete(product.ID, "otro@b.com")
	assert.ErrorIs(t, err, domain.ErrProductNotExists)

	sigue, err := uc.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, sigue.ID, "el producto sigue en el catálogo")
}
