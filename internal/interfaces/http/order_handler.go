package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/application/usecase"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/pkg/logger"
)

// OrderHandler creación y consulta de órdenes.
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	log *logger.Logger
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(uc *usecase.OrderUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear orden (solo customer)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateOrderRequest  true  "products (1-15), transporter, payment"
// @Success      201   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      422   {object}  dto.Envelope
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	caller := GetUser(c)

	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	if !entity.ValidPaymentMethod(in.Payment.PaymentMethod) ||
		!entity.ValidCurrency(in.Payment.Currency) ||
		in.Payment.TotalAmount <= 0 {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	h.log.Debug().Str("customer", caller.Email).Int("lines", len(in.Products)).Msg("orders :: create")

	order, err := h.uc.Create(caller, in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusCreated, RespCreated, fiber.Map{"orderId": order.ID})
}

// List godoc
// @Summary      Listar órdenes (alcance según rol)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	caller := GetUser(c)
	h.log.Debug().Str("role", string(caller.Role)).Msg("orders :: list")

	orders, err := h.uc.ListByRole(caller.Role, caller.Email)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, RespOK, fiber.Map{"orders": dto.ToOrderResponses(orders)})
}

// GetByID godoc
// @Summary      Obtener orden por id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path  string  true  "id de la orden"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/orders/{orderId} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("orderId")
	h.log.Debug().Str("orderId", id).Msg("orders :: getById")

	order, err := h.uc.GetByID(id)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, RespOK, fiber.Map{"order": dto.ToOrderResponse(order)})
}

// Remove godoc
// @Summary      Eliminar orden (solo customer dueño)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        orderId  path  string  true  "id de la orden"
// @Success      200  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/v1/orders/{orderId} [delete]
func (h *OrderHandler) Remove(c *fiber.Ctx) error {
	caller := GetUser(c)
	id := c.Params("orderId")
	h.log.Debug().Str("orderId", id).Str("customer", caller.Email).Msg("orders :: remove")

	order, err := h.uc.Remove(id, caller.Email)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, RespOK, fiber.Map{"order": dto.ToOrderResponse(order)})
}
