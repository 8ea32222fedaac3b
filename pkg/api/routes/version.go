package routes

import (
	"github.com/gofiber/fiber/v2"
)

const Version = "1.0.0"

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": Version,
	})
}
