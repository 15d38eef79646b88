package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spacelogix/spacelogix-api/internal/application/auth"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
	"github.com/spacelogix/spacelogix-api/pkg/jwt"
)

// Locals keys para el usuario autenticado y el token crudo en Fiber.
const (
	LocalUser  = "user"
	LocalToken = "token"
)

// AuthMiddleware valida el Bearer Token JWT, rechaza tokens revocados y carga el
// usuario completo (por el claim email) a c.Locals para los handlers.
// revoker puede ser nil: sin Redis no hay lista de revocación.
func AuthMiddleware(jwtSecret string, userRepo repository.UserRepository, revoker auth.TokenRevoker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respond(c, fiber.StatusUnauthorized, RespUnauthorized, nil)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respond(c, fiber.StatusUnauthorized, RespUnauthorized, nil)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respond(c, fiber.StatusUnauthorized, RespUnauthorized, nil)
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respond(c, fiber.StatusUnauthorized, RespUnauthorized, nil)
		}
		if revoker != nil {
			revoked, err := revoker.IsRevoked(tokenString)
			if err != nil || revoked {
				// Si Redis falla preferimos rechazar: un 401 es recuperable,
				// aceptar un token revocado no.
				return respond(c, fiber.StatusUnauthorized, RespUnauthorized, nil)
			}
		}
		user, err := userRepo.GetByEmail(claims.Email)
		if err != nil || user == nil {
			return respond(c, fiber.StatusUnauthorized, RespUnauthorized, nil)
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalToken, tokenString)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de
// AuthMiddleware (necesita el usuario en locals).
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return respond(c, fiber.StatusUnauthorized, RespUnauthorized, nil)
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return respond(c, fiber.StatusForbidden, RespForbidden, nil)
	}
}

// GetUser devuelve el usuario autenticado del contexto (después del middleware de auth).
func GetUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}

// GetToken devuelve el token crudo presentado en la petición.
func GetToken(c *fiber.Ctx) string {
	v := c.Locals(LocalToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
