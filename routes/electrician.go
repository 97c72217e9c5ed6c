package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletrigo/eletrigo-api/controllers"
)

func SetupElectricianRoutes(app *fiber.App) {
	electricians := app.Group("/electricians")

	electricians.Get("/", controllers.GetAllElectricians)
	electricians.Post("/", controllers.CreateElectrician)
	electricians.Put("/:id", controllers.UpdateElectrician)
}
