package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletrigo/eletrigo-api/controllers"
)

func SetupServiceRoutes(app *fiber.App) {
	services := app.Group("/services")

	services.Get("/", controllers.GetAllServices)
	services.Post("/", controllers.CreateService)
	services.Put("/:id", controllers.UpdateService)
}
