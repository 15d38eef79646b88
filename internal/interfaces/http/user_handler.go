package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/application/usecase"
	"github.com/spacelogix/spacelogix-api/pkg/logger"
)

// UserHandler perfil y edición del usuario autenticado.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user := GetUser(c)
	h.log.Debug().Str("email", user.Email).Msg("users :: me")
	return respond(c, fiber.StatusOK, RespOK, fiber.Map{"user": dto.ToUserResponse(user)})
}

// Update godoc
// @Summary      Editar perfil (patch parcial)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.EditUserRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Envelope
// @Router       /api/v1/users [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	caller := GetUser(c)

	var in dto.EditUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	h.log.Debug().Str("email", caller.Email).Msg("users :: update")

	user, err := h.uc.Update(caller.ID, in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, RespOK, fiber.Map{"user": dto.ToUserResponse(user)})
}
