package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletrigo/eletrigo-api/controllers"
)

func SetupClientRoutes(app *fiber.App) {
	clients := app.Group("/clients")

	clients.Get("/", controllers.GetAllClients)
	clients.Post("/", controllers.CreateClient)
	clients.Put("/:id", controllers.UpdateClient)
}
