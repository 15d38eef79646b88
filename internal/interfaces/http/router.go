package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spacelogix/spacelogix-api/internal/application/auth"
	"github.com/spacelogix/spacelogix-api/internal/application/usecase"
	"github.com/spacelogix/spacelogix-api/internal/domain/entity"
	"github.com/spacelogix/spacelogix-api/internal/domain/repository"
	"github.com/spacelogix/spacelogix-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	UserRepo  repository.UserRepository
	Revoker   auth.TokenRevoker // puede ser nil
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (signup/signin públicos; signout requiere Bearer Token)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)

	protect := AuthMiddleware(deps.JWTSecret, deps.UserRepo, deps.Revoker)
	authGroup.Get("/signout", protect, authHandler.Signout)

	// Users (protegido)
	users := api.Group("/users", protect)
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Get("/me", userHandler.Me)
	users.Patch("/", userHandler.Update)

	// Products (protegido; mutaciones solo supplier)
	products := api.Group("/products", protect)
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Post("/", RequireRole(entity.RoleSupplier), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:productId", productHandler.GetByID)
	products.Patch("/:productId", RequireRole(entity.RoleSupplier), productHandler.Update)
	products.Delete("/:productId", RequireRole(entity.RoleSupplier), productHandler.Remove)

	// Orders (protegido; creación y borrado solo customer)
	orders := api.Group("/orders", protect)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Log)
	orders.Post("/", RequireRole(entity.RoleCustomer), orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:orderId", orderHandler.GetByID)
	orders.Delete("/:orderId", RequireRole(entity.RoleCustomer), orderHandler.Remove)
}
