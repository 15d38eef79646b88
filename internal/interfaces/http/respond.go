package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/domain"
	"github.com/spacelogix/spacelogix-api/pkg/logger"
)

// respond escribe el envelope uniforme {code, message, isotime, data?}.
func respond(c *fiber.Ctx, status int, payload Payload, data interface{}) error {
	return c.Status(status).JSON(dto.Envelope{
		Code:    payload.Code,
		Message: payload.Message,
		Isotime: time.Now(),
		Data:    data,
	})
}

// handleError traduce errores de dominio a status + payload del catálogo.
// Cualquier error no catalogado se registra con contexto y sale como 500 genérico.
func handleError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserTaken):
		return respond(c, fiber.StatusConflict, RespUserTaken, nil)
	case errors.Is(err, domain.ErrProductExists):
		return respond(c, fiber.StatusConflict, RespProductExists, nil)
	case errors.Is(err, domain.ErrUserNotExists):
		return respond(c, fiber.StatusNotFound, RespUserNotExists, nil)
	case errors.Is(err, domain.ErrProductNotExists):
		return respond(c, fiber.StatusNotFound, RespProductNotExists, nil)
	case errors.Is(err, domain.ErrOrderNotExists):
		return respond(c, fiber.StatusNotFound, RespOrderNotExists, nil)
	case errors.Is(err, domain.ErrMissingProducts):
		return respond(c, fiber.StatusNotFound, RespMissingProducts, nil)
	case errors.Is(err, domain.ErrInvalidPassword):
		return respond(c, fiber.StatusUnauthorized, RespInvalidPassword, nil)
	case errors.Is(err, domain.ErrUnauthorized):
		return respond(c, fiber.StatusUnauthorized, RespUnauthorized, nil)
	case errors.Is(err, domain.ErrForbidden):
		return respond(c, fiber.StatusForbidden, RespForbidden, nil)
	case errors.Is(err, domain.ErrTooManyProducts):
		return respond(c, fiber.StatusUnprocessableEntity, RespTooManyProducts, nil)
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusUnprocessableEntity, RespInsufficientStock, nil)
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error no manejado")
		return respond(c, fiber.StatusInternalServerError, RespInternalError, nil)
	}
}
