package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/cache"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
)

const teamCacheKey = "content:team"

func GetAllTeamMembers(c *fiber.Ctx) error {
	if cached, ok := cache.Get(teamCacheKey); ok {
		return c.Type("json").SendString(cached)
	}

	var members []models.TeamMember
	if err := db.DB.Where("active = ?", true).Order("sort_order ASC").Find(&members).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri alınamadı",
			Error:   err.Error(),
		})
	}
	cache.Set(teamCacheKey, members)
	return c.JSON(members)
}

func CreateTeamMember(c *fiber.Ctx) error {
	var member models.TeamMember
	if err := c.BodyParser(&member); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(&member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri oluşturulamadı",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(teamCacheKey)
	return c.Status(fiber.StatusCreated).JSON(member)
}

func UpdateTeamMember(c *fiber.Ctx) error {
	var input models.TeamMember
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
	if err := db.DB.Model(&models.TeamMember{}).Where("id = ?", input.ID).Updates(&input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri güncellenemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(teamCacheKey)
	return c.JSON(input)
}

func DeleteTeamMember(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "ID gerekli",
		})
	}
	if err := db.DB.Where("id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri silinemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(teamCacheKey)
	return c.JSON(fiber.Map{"success": true})
}
