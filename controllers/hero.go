package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/cache"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
	"gorm.io/gorm"
)

const (
	heroCacheKey       = "content:hero"
	heroVideosCacheKey = "content:hero-videos"
)

// GetHero returns the active landing banner.
func GetHero(c *fiber.Ctx) error {
	if cached, ok := cache.Get(heroCacheKey); ok {
		return c.Type("json").SendString(cached)
	}

	var hero models.HeroSection
	if err := db.DB.Where("active = ?", true).First(&hero).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri alınamadı",
			Error:   err.Error(),
		})
	}
	cache.Set(heroCacheKey, hero)
	return c.JSON(hero)
}

func CreateHero(c *fiber.Ctx) error {
	var hero models.HeroSection
	if err := c.BodyParser(&hero); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(&hero).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri oluşturulamadı",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(heroCacheKey)
	return c.JSON(hero)
}

func UpdateHero(c *fiber.Ctx) error {
	var input models.HeroSection
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
	if err := db.DB.Model(&models.HeroSection{}).Where("id = ?", input.ID).Updates(&input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri güncellenemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(heroCacheKey)
	return c.JSON(input)
}

// GetHeroVideos lists the active carousel clips in play order.
func GetHeroVideos(c *fiber.Ctx) error {
	if cached, ok := cache.Get(heroVideosCacheKey); ok {
		return c.Type("json").SendString(cached)
	}

	var videos []models.HeroVideo
	if err := db.DB.Where("active = ?", true).Order("sort_order ASC").Find(&videos).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri alınamadı",
			Error:   err.Error(),
		})
	}
	cache.Set(heroVideosCacheKey, videos)
	return c.JSON(videos)
}

// ImportHeroVideos resets the carousel to the stock 1.mp4..21.mp4 clips.
func ImportHeroVideos(c *fiber.Ctx) error {
	var created []models.HeroVideo
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Unscoped().Delete(&models.HeroVideo{}).Error; err != nil {
			return err
		}
		for i := 1; i <= 21; i++ {
			video := models.HeroVideo{
				FileName: fmt.Sprintf("%d.mp4", i),
				Order:    i - 1,
				Active:   true,
			}
			if err := tx.Create(&video).Error; err != nil {
				return err
			}
			created = append(created, video)
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Import failed",
			Error:   err.Error(),
		})
	}

	cache.Invalidate(heroVideosCacheKey)
	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Successfully imported %d videos", len(created)),
		"videos":  created,
	})
}
