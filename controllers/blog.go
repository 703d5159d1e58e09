package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/cache"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
)

const blogCacheKey = "content:blog"

// GetAllBlogPosts lists published posts newest-first. ?admin=true includes
// drafts for the admin panel.
func GetAllBlogPosts(c *fiber.Ctx) error {
	if c.Query("admin") != "true" {
		if cached, ok := cache.Get(blogCacheKey); ok {
			return c.Type("json").SendString(cached)
		}
	}

	query := db.DB.Order("created_at DESC")
	if c.Query("admin") != "true" {
		query = query.Where("published = ?", true)
	}

	var posts []models.BlogPost
	if err := query.Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri alınamadı",
			Error:   err.Error(),
		})
	}
	if c.Query("admin") != "true" {
		cache.Set(blogCacheKey, posts)
	}
	return c.JSON(posts)
}

// GetBlogPost serves a single post by its URL slug.
func GetBlogPost(c *fiber.Ctx) error {
	slug := c.Params("slug")
	var post models.BlogPost
	if err := db.DB.Where("slug = ? AND published = ?", slug, true).First(&post).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Yazı bulunamadı",
			Error:   err.Error(),
		})
	}
	return c.JSON(post)
}

func CreateBlogPost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Create(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri oluşturulamadı",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(blogCacheKey)
	return c.Status(fiber.StatusCreated).JSON(post)
}

func UpdateBlogPost(c *fiber.Ctx) error {
	var input models.BlogPost
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
	if err := db.DB.Model(&models.BlogPost{}).Where("id = ?", input.ID).Updates(&input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri güncellenemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(blogCacheKey)
	return c.JSON(input)
}

func DeleteBlogPost(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "ID gerekli",
		})
	}
	if err := db.DB.Where("id = ?", id).Delete(&models.BlogPost{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Veri silinemedi",
			Error:   err.Error(),
		})
	}
	cache.Invalidate(blogCacheKey)
	return c.JSON(fiber.Map{"success": true})
}
