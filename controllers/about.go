package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/cache"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
)

const aboutCacheKey = "content:about"

// GetAbout returns the active about section.
func GetAbout(c *fiber.Ctx) error {
	if cached, ok := cache.Get(aboutCacheKey); ok {
		return c.Type("json").SendString(cached)
	}

	var about models.AboutSection
	if err := db.DB.Where("active = ?", true).First(&about).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri alınamadı",
			Error:   err.Error(),
		})
	}
	cache.Set(aboutCacheKey, about)
	return c.JSON(about)
}

func CreateAbout(c *fiber.Ctx) error {
	var about models.AboutSection
	if err := c.BodyParser(&about); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(&about).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri oluşturulamadı",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(aboutCacheKey)
	return c.JSON(about)
}

func UpdateAbout(c *fiber.Ctx) error {
	var input models.AboutSection
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "ID gerekli",
		})
	}
	if err := db.DB.Model(&models.AboutSection{}).Where("id = ?", input.ID).Updates(&input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri güncellenemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(aboutCacheKey)
	return c.JSON(input)
}
