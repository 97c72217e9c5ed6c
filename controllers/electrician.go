package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletrigo/eletrigo-api/db"
	"github.com/eletrigo/eletrigo-api/models"
)

// GetAllElectricians returns every electrician, newest joiners first.
func GetAllElectricians(c *fiber.Ctx) error {
	var electricians []models.Electrician
	if err := db.DB.Order("join_date desc").Find(&electricians).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(electricians)
}

// CreateElectrician inserts a new electrician document.
func CreateElectrician(c *fiber.Ctx) error {
	electrician := new(models.Electrician)
	if err := c.BodyParser(electrician); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// The store assigns identifiers; any submitted one is ignored.
	electrician.ID = ""

	if err := electrician.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := db.DB.Create(electrician).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(electrician)
}

// UpdateElectrician applies a partial-field merge by identifier.
func UpdateElectrician(c *fiber.Ctx) error {
	id := c.Params("id")

	body := map[string]any{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	update, err := models.ElectricianUpdate(body)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var electrician models.Electrician
	if db.DB.First(&electrician, "id = ?", id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Electrician not found",
		})
	}

	if len(update) > 0 {
		if err := db.DB.Model(&electrician).Updates(update).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		db.DB.First(&electrician, "id = ?", id)
	}

	return c.JSON(electrician)
}
