package controllers

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/eletrigo/eletrigo-api/config"
)

// AdminLogin checks the submitted credentials against the configured admin
// pair and issues a 12-hour session token. Mismatches are reported without
// saying which field was wrong.
func AdminLogin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type LoginInput struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		input := new(LoginInput)
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot parse JSON",
			})
		}

		if input.Email == "" || input.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Email and password are required",
			})
		}

		emailOK := subtle.ConstantTimeCompare([]byte(input.Email), []byte(cfg.AdminEmail)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(cfg.AdminPassword)) == 1
		if !emailOK || !passwordOK {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}

		claims := jwt.MapClaims{
			"role":  "admin",
			"email": input.Email,
			"exp":   time.Now().Add(12 * time.Hour).Unix(),
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to generate token",
			})
		}

		return c.JSON(fiber.Map{
			"ok":    true,
			"token": tokenString,
		})
	}
}

// AdminMe returns the role and email claims of a verified session token.
func AdminMe(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No authentication token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token claims",
		})
	}

	return c.JSON(fiber.Map{
		"role":  claims["role"],
		"email": claims["email"],
	})
}
