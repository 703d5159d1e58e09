package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/cache"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
)

const contactCacheKey = "content:contact"

// GetContact returns the office contact card.
func GetContact(c *fiber.Ctx) error {
	if cached, ok := cache.Get(contactCacheKey); ok {
		return c.Type("json").SendString(cached)
	}

	var contact models.ContactInfo
	if err := db.DB.First(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri alınamadı",
			Error:   err.Error(),
		})
	}
	cache.Set(contactCacheKey, contact)
	return c.JSON(contact)
}

func CreateContact(c *fiber.Ctx) error {
	var contact models.ContactInfo
	if err := c.BodyParser(&contact); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri oluşturulamadı",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(contactCacheKey)
	return c.JSON(contact)
}

func UpdateContact(c *fiber.Ctx) error {
	var input models.ContactInfo
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
	if err := db.DB.Model(&models.ContactInfo{}).Where("id = ?", input.ID).Updates(&input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri güncellenemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(contactCacheKey)
	return c.JSON(input)
}
