package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletrigo/eletrigo-api/db"
	"github.com/eletrigo/eletrigo-api/models"
)

// GetAllClients returns every client, newest joiners first.
func GetAllClients(c *fiber.Ctx) error {
	var clients []models.Client
	if err := db.DB.Order("join_date desc").Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(clients)
}

// CreateClient inserts a new client document.
func CreateClient(c *fiber.Ctx) error {
	client := new(models.Client)
	if err := c.BodyParser(client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	client.ID = ""

	if err := client.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := db.DB.Create(client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient applies a partial-field merge by identifier.
func UpdateClient(c *fiber.Ctx) error {
	id := c.Params("id")

	body := map[string]any{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	update, err := models.ClientUpdate(body)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var client models.Client
	if db.DB.First(&client, "id = ?", id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}

	if len(update) > 0 {
		if err := db.DB.Model(&client).Updates(update).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		db.DB.First(&client, "id = ?", id)
	}

	return c.JSON(client)
}
