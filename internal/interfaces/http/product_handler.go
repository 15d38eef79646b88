package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/application/usecase"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/pkg/logger"
)

// ProductHandler CRUD del catálogo de productos.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto (solo supplier)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProductRequest  true  "name, description, price, currency, stock"
// @Success      201   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	caller := GetUser(c)

	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	if strings.TrimSpace(in.Name) == "" || in.Price <= 0 || in.Stock < 0 || !entity.ValidCurrency(in.Currency) {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	h.log.Debug().Str("name", in.Name).Str("supplier", caller.Email).Msg("products :: create")

	product, err := h.uc.Create(caller, in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusCreated, RespCreated, fiber.Map{"productId": product.ID})
}

// List godoc
// @Summary      Listar productos (alcance según rol)
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	caller := GetUser(c)
	h.log.Debug().Str("role", string(caller.Role)).Msg("products :: list")

	products, err := h.uc.List(caller.Role, caller.Email)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, RespOK, fiber.Map{"products": dto.ToProductResponses(products)})
}

// GetByID godoc
// @Summary      Obtener producto por id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string  true  "id del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/products/{productId} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("productId")
	h.log.Debug().Str("productId", id).Msg("products :: getById")

	product, err := h.uc.GetByID(id)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, RespOK, fiber.Map{"product": dto.ToProductResponse(product)})
}

// Update godoc
// @Summary      Editar producto (solo supplier dueño; patch parcial)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string  true  "id del producto"
// @Param        body  body  dto.EditProductRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/v1/products/{productId} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	caller := GetUser(c)
	id := c.Params("productId")

	var in dto.EditProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	h.log.Debug().Str("productId", id).Str("supplier", caller.Email).Msg("products :: update")

	product, err := h.uc.Update(id, caller.Email, in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, RespOK, fiber.Map{"product": dto.ToProductResponse(product)})
}

// Remove godoc
// @Summary      Eliminar producto (solo supplier dueño)
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string  true  "id del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/products/{productId} [delete]
func (h *ProductHandler) Remove(c *fiber.Ctx) error {
	caller := GetUser(c)
	id := c.Params("productId")
	h.log.Debug().Str("productId", id).Str("supplier", caller.Email).Msg("products :: remove")

	product, err := h.uc.Delete(id, caller.Email)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, RespOK, fiber.Map{"product": dto.ToProductResponse(product)})
}
