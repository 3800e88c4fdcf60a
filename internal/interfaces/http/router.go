package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dorozco/pedidos-api/internal/application/auth"
	"github.com/dorozco/pedidos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	OrderUC    *usecase.OrderUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// User (registro y token públicos; perfil protegido)
	userGroup := api.Group("/user")
	userHandler := NewUserHandler(deps.AuthUC)
	userGroup.Post("/create", userHandler.Register)
	userGroup.Post("/token", userHandler.Token)
	// POST /me no está registrado: Fiber responde 405 Method Not Allowed.
	me := userGroup.Group("/me", AuthMiddleware(deps.JWTSecret))
	me.Get("/", userHandler.Me)
	me.Put("/", userHandler.UpdateMe)
	me.Patch("/", userHandler.UpdateMe)

	// Categories (público, como el resto de recursos de catálogo)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Orders (protegido; visibilidad acotada al dueño)
	orders := api.Group("/orders", AuthMiddleware(deps.JWTSecret))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
}
