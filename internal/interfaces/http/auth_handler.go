package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spacelogix/spacelogix-api/internal/application/auth"
	"github.com/spacelogix/spacelogix-api/internal/application/dto"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/pkg/logger"
)

// AuthHandler maneja signup, signin y signout.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Signup godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "name, email, password, role"
// @Success      201   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/v1/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || !entity.ValidRole(in.Role) {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	if !ValidPassword(in.Password) {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	h.log.Debug().Str("email", in.Email).Str("role", in.Role).Msg("auth :: signup")

	token, err := h.uc.Signup(in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusCreated, RespCreated, token)
}

// Signin godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SigninRequest  true  "email, password, role"
// @Success      200   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/v1/auth/signin [post]
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var in dto.SigninRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	if strings.TrimSpace(in.Email) == "" || !entity.ValidRole(in.Role) || !ValidPassword(in.Password) {
		return respond(c, fiber.StatusUnprocessableEntity, RespValidation, nil)
	}
	h.log.Debug().Str("email", in.Email).Msg("auth :: signin")

	token, err := h.uc.Signin(in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, RespOK, token)
}

// Signout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /api/v1/auth/signout [get]
func (h *AuthHandler) Signout(c *fiber.Ctx) error {
	caller := GetUser(c)
	h.log.Debug().Str("email", caller.Email).Msg("auth :: signout")

	user, err := h.uc.Signout(caller.Email, GetToken(c))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, RespOK, fiber.Map{"user": dto.ToUserResponse(user)})
}
