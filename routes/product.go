package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletrigo/eletrigo-api/controllers"
)

// SetupProductRoutes configures the product catalog routes. Products are the
// only collection exposing a delete route.
func SetupProductRoutes(app *fiber.App) {
	products := app.Group("/products")

	products.Get("/", controllers.GetAllProducts)
	products.Post("/", controllers.CreateProduct)
	products.Put("/:id", controllers.UpdateProduct)
	products.Delete("/:id", controllers.DeleteProduct)
}
