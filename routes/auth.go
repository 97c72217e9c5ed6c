package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletrigo/eletrigo-api/config"
	"github.com/eletrigo/eletrigo-api/controllers"
	"github.com/eletrigo/eletrigo-api/middleware"
)

// SetupAuthRoutes configures the admin authentication routes.
func SetupAuthRoutes(app *fiber.App, cfg *config.Config) {
	admin := app.Group("/auth/admin")

	admin.Post("/login", controllers.AdminLogin(cfg))
	admin.Get("/me", middleware.AdminProtected(cfg), controllers.AdminMe)
}
