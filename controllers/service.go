package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/cache"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
)

const servicesCacheKey = "content:services"

// GetAllServices lists the active practice areas in display order.
func GetAllServices(c *fiber.Ctx) error {
	if cached, ok := cache.Get(servicesCacheKey); ok {
		return c.Type("json").SendString(cached)
	}

	var services []models.Service
	if err := db.DB.Where("active = ?", true).Order("sort_order ASC").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri alınamadı",
			Error:   err.Error(),
		})
	}
	cache.Set(servicesCacheKey, services)
	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Hizmet bulunamadı",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

func CreateService(c *fiber.Ctx) error {
	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri oluşturulamadı",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(servicesCacheKey)
	return c.Status(fiber.StatusCreated).JSON(service)
}

func UpdateService(c *fiber.Ctx) error {
	var input models.Service
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
	if err := db.DB.Model(&models.Service{}).Where("id = ?", input.ID).Updates(&input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri güncellenemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(servicesCacheKey)
	return c.JSON(input)
}

func DeleteService(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "ID gerekli",
		})
	}
	if err := db.DB.Where("id = ?", id).Delete(&models.Service{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri silinemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(servicesCacheKey)
	return c.JSON(fiber.Map{"success": true})
}
