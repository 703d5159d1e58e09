package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
)

type notifyInput struct {
	Type utils.NotificationType `json:"type"`
}

// NotifyAppointment builds the outbound WhatsApp deep link (and mails the
// client when an address exists) for an appointment. Success means the link
// was constructed, not that anyone sent or received anything; the admin opens
// the returned link manually.
func NotifyAppointment(c *fiber.Ctx) error {
	var input notifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if !utils.ValidNotificationType(input.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Geçersiz bildirim türü",
		})
	}

	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	message := utils.NotificationMessage(&appointment, input.Type)
	link := utils.WhatsAppLink(appointment.Phone, message)

	if err := utils.SendAppointmentEmail(&appointment, input.Type); err != nil {
		log.Printf("Failed to send %s email for appointment %d: %v", input.Type, appointment.ID, err)
	}

	flag := "notification_sent"
	if input.Type == utils.NotifyReminder {
		flag = "reminder_sent"
	}
	if err := db.DB.Model(&appointment).Update(flag, true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"whatsappLink": link,
	})
}
