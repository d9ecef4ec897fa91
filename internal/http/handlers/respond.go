package handlers

import "github.com/gofiber/fiber/v2"

// jsonError writes the single-error body shape used across the API.
func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
