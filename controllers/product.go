package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eletrigo/eletrigo-api/db"
	"github.com/eletrigo/eletrigo-api/models"
)

// GetAllProducts returns every product. The catalog has no documented order.
func GetAllProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := db.DB.Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(products)
}

// CreateProduct inserts a new product document.
func CreateProduct(c *fiber.Ctx) error {
	product := new(models.Product)
	if err := c.BodyParser(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	product.ID = ""

	if err := product.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := db.DB.Create(product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct applies a partial-field merge by identifier.
func UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	body := map[string]any{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	update, err := models.ProductUpdate(body)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var product models.Product
	if db.DB.First(&product, "id = ?", id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if len(update) > 0 {
		if err := db.DB.Model(&product).Updates(update).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		db.DB.First(&product, "id = ?", id)
	}

	return c.JSON(product)
}

// DeleteProduct removes a product by identifier. Products are the only
// collection with a delete route.
func DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	if db.DB.First(&product, "id = ?", id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if err := db.DB.Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"ok": true})
}
