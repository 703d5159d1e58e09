package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
)

// GetAllSlots lists bookable slots. The public site sees active, unbooked,
// future slots only; ?admin=true returns everything for the admin panel.
func GetAllSlots(c *fiber.Ctx) error {
	query := db.DB.Order("date ASC, start_time ASC")
	if c.Query("admin") != "true" {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		query = query.Where("active = ? AND is_booked = ? AND date >= ?", true, false, today)
	}

	var slots []models.AvailableSlot
	if err := query.Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch slots",
			Error:   err.Error(),
		})
	}
	return c.JSON(slots)
}

type slotInput struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Active    *bool  `json:"active"`
}

// CreateSlot inserts a single slot. Overlapping or duplicate slots are
// permitted; the admin panel is the only writer and cleans up by hand.
func CreateSlot(c *fiber.Ctx) error {
	var input slotInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Date == "" || input.StartTime == "" || input.EndTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Eksik alanlar var",
		})
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Geçersiz tarih",
			Error:   err.Error(),
		})
	}

	slot := models.AvailableSlot{
		Date:      date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Active:    true,
	}
	if input.Active != nil {
		slot.Active = *input.Active
	}

	if err := db.DB.Create(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create slot",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

type bulkSlotInput struct {
	Days      []int  `json:"days"` // 0=Sunday .. 6=Saturday
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"` // minutes
	From      string `json:"from"`
	To        string `json:"to"`
}

// CreateBulkSlots generates slots for a recurring weekly pattern over a date
// range. There is no dedupe against earlier runs; reapplying the same pattern
// creates duplicate rows.
func CreateBulkSlots(c *fiber.Ctx) error {
	var input bulkSlotInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	from, err := utils.ParseDate(input.From)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Geçersiz tarih",
			Error:   err.Error(),
		})
	}
	to, err := utils.ParseDate(input.To)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Geçersiz tarih",
			Error:   err.Error(),
		})
	}

	days := make([]time.Weekday, 0, len(input.Days))
	for _, d := range input.Days {
		if d < 0 || d > 6 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Geçersiz gün",
			})
		}
		days = append(days, time.Weekday(d))
	}

	pattern := models.RecurringPattern{
		Days:      days,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Duration:  time.Duration(input.Duration) * time.Minute,
		From:      from,
		To:        to,
	}

	slots, err := pattern.Generate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Geçersiz tekrar deseni",
			Error:   err.Error(),
		})
	}
	if len(slots) == 0 {
		return c.JSON(fiber.Map{"success": true, "created": 0})
	}

	if err := db.DB.Create(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create slots",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "created": len(slots)})
}

type updateSlotInput struct {
	ID        uint    `json:"id"`
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Active    *bool   `json:"active"`
	IsBooked  *bool   `json:"isBooked"`
}

// UpdateSlot edits a slot by the id in the body, matching the admin panel's
// wire shape.
func UpdateSlot(c *fiber.Ctx) error {
	var input updateSlotInput
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

	var slot models.AvailableSlot
	if err := db.DB.First(&slot, input.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Slot not found",
			Error:   err.Error(),
		})
	}

	updates := map[string]interface{}{}
	if input.Date != nil {
		date, err := utils.ParseDate(*input.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Geçersiz tarih",
				Error:   err.Error(),
			})
		}
		updates["date"] = date
	}
	if input.StartTime != nil {
		updates["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		updates["end_time"] = *input.EndTime
	}
	if input.Active != nil {
		updates["active"] = *input.Active
	}
	if input.IsBooked != nil {
		updates["is_booked"] = *input.IsBooked
	}

	if err := db.DB.Model(&slot).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update slot",
			Error:   err.Error(),
		})
	}
	return c.JSON(slot)
}

// DeleteSlot removes a slot unconditionally, booked or not. Any appointment
// pointing at it keeps its own date/time copy.
func DeleteSlot(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "ID gerekli",
		})
	}
	if err := db.DB.Where("id = ?", id).Delete(&models.AvailableSlot{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete slot",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
