package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletrigo/eletrigo-api/db"
)

// Health reports store connectivity and whether storage is remote or the
// disposable in-memory fallback.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"db":     db.Status,
		"mode":   db.Mode,
	})
}
