package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/murekkephukuk/murekkep-api/utils"
)

const uploadDir = "./public/uploads"

// UploadFile stores a multipart upload and returns its public URL. When
// Cloudinary credentials are configured the file goes there; otherwise it
// lands in the local public directory served by the static handler.
func UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "No file provided",
			Error:   err.Error(),
		})
	}

	name := strings.ReplaceAll(fileHeader.Filename, " ", "-")
	publicID := fmt.Sprintf("%s-%s", uuid.NewString(), name)

	if utils.CloudinaryConfigured() {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Upload failed",
				Error:   err.Error(),
			})
		}
		defer file.Close()

		url, err := utils.UploadToCloudinary(file, publicID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Upload failed",
				Error:   err.Error(),
			})
		}
		return c.JSON(fiber.Map{"url": url, "success": true})
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Upload failed",
			Error:   err.Error(),
		})
	}
	if err := c.SaveFile(fileHeader, filepath.Join(uploadDir, publicID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Upload failed",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"url": "/uploads/" + publicID, "success": true})
}
