package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/utils"
)

// SeedDatabase bootstraps the admin account and demo content. It only runs
// against an empty database, so it is safe to leave reachable after launch.
func SeedDatabase(c *fiber.Ctx) error {
	if err := db.Seed(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Seed işlemi yapılamadı",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Veritabanı başarıyla dolduruldu",
	})
}
