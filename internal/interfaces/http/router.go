package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/application/auth"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName  string
	Sessions repository.SessionSource
	Manager  sessionManager
	Policy   auth.Policy
	Log      zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token de Supabase)
	protected := api.Group("/", AuthMiddleware(deps.Sessions, deps.Manager))
	adminOnly := RequireRole(entity.RoleAdmin)

	authHandler := NewAuthHandler(deps.Manager, deps.Policy)
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/signout", authHandler.SignOut)

	// Products (lectura para todos, escritura admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Log)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/cavaben", productHandler.Cavaben)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Post("/:id/images", adminOnly, productHandler.UploadImages)
	products.Delete("/:id/images/:index", adminOnly, productHandler.DeleteImage)

	// Objections
	objections := protected.Group("/objections")
	objectionHandler := NewObjectionHandler(deps.Log)
	objections.Get("/", objectionHandler.List)
	objections.Get("/:id/script", objectionHandler.Script)
	objections.Post("/", adminOnly, objectionHandler.Create)
	objections.Put("/:id", adminOnly, objectionHandler.Update)
	objections.Delete("/:id", adminOnly, objectionHandler.Delete)

	// Tasks (agenda propia; cualquier cargo)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.Log)
	tasks.Get("/", taskHandler.List)
	tasks.Post("/", taskHandler.Create)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Patch("/:id/toggle", taskHandler.Toggle)
	tasks.Delete("/:id", taskHandler.Delete)

	// Admin
	admin := protected.Group("/admin", adminOnly)
	adminHandler := NewAdminHandler(deps.Manager, deps.Log)
	admin.Get("/profiles", adminHandler.ListProfiles)
	admin.Put("/profiles/:id/role", adminHandler.UpdateRole)
}
