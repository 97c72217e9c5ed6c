package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletrigo/eletrigo-api/db"
	"github.com/eletrigo/eletrigo-api/models"
)

// GetAllServices returns every service request, most recent date first.
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Order("date desc").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(services)
}

// CreateService inserts a new service request. The electricianId, if any, is
// stored as given; it is not checked against the electricians collection.
func CreateService(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	service.ID = ""

	if err := service.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService applies a partial-field merge by identifier. Chat appends
// arrive as the full replacement array.
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")

	body := map[string]any{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	update, err := models.ServiceUpdate(body)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var service models.Service
	if db.DB.First(&service, "id = ?", id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	if len(update) > 0 {
		if err := db.DB.Model(&service).Updates(update).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		db.DB.First(&service, "id = ?", id)
	}

	return c.JSON(service)
}
