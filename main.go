package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/eletrigo/eletrigo-api/config"
	"github.com/eletrigo/eletrigo-api/controllers"
	"github.com/eletrigo/eletrigo-api/db"
	"github.com/eletrigo/eletrigo-api/routes"
)

func main() {
	cfg := config.Load()

	app := fiber.New()
	db.Connect(cfg)
	db.Migrate()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/health", controllers.Health)
	routes.SetupAuthRoutes(app, cfg)
	routes.SetupElectricianRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupProductRoutes(app)
	routes.SetupServiceRoutes(app)

	log.Fatal(app.Listen(":" + cfg.Port))
}
