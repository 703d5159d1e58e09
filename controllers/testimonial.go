package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/cache"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
)

const testimonialsCacheKey = "content:testimonials"

func GetAllTestimonials(c *fiber.Ctx) error {
	if cached, ok := cache.Get(testimonialsCacheKey); ok {
		return c.Type("json").SendString(cached)
	}

	var testimonials []models.Testimonial
	if err := db.DB.Where("active = ?", true).Order("sort_order ASC").Find(&testimonials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri alınamadı",
			Error:   err.Error(),
		})
	}
	cache.Set(testimonialsCacheKey, testimonials)
	return c.JSON(testimonials)
}

func CreateTestimonial(c *fiber.Ctx) error {
	var testimonial models.Testimonial
	if err := c.BodyParser(&testimonial); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri oluşturulamadı",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(testimonialsCacheKey)
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

func UpdateTestimonial(c *fiber.Ctx) error {
	var input models.Testimonial
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
	if err := db.DB.Model(&models.Testimonial{}).Where("id = ?", input.ID).Updates(&input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri güncellenemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(testimonialsCacheKey)
	return c.JSON(input)
}

func DeleteTestimonial(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "ID gerekli",
		})
	}
	if err := db.DB.Where("id = ?", id).Delete(&models.Testimonial{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri silinemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(testimonialsCacheKey)
	return c.JSON(fiber.Map{"success": true})
}
