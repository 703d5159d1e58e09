package controllers

import (
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BaseURL is the public origin used when synthesizing meeting links.
func BaseURL() string {
	if url := os.Getenv("BASE_URL"); url != "" {
		return url
	}
	return "https://murekkephukuk.vercel.app"
}

var errSlotTaken = errors.New("slot already booked")

// GetAllAppointments returns appointments newest-first. The optional ?id=
// query narrows to a single record; the call page relies on that shape.
func GetAllAppointments(c *fiber.Ctx) error {
	query := db.DB.Order("created_at DESC")
	if id := c.Query("id"); id != "" {
		query = query.Where("id = ?", id)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

type createAppointmentInput struct {
	Name            string                 `json:"name"`
	Phone           string                 `json:"phone"`
	Email           string                 `json:"email"`
	Date            string                 `json:"date"`
	Time            string                 `json:"time"`
	MeetingPlatform models.MeetingPlatform `json:"meetingPlatform"`
	Notes           string                 `json:"notes"`
}

// lockForUpdate row-locks the slot read on postgres. SQLite has no
// SELECT ... FOR UPDATE; its single writer serializes instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CreateAppointment books a consultation. The insert and the slot reservation
// run in one transaction: a free matching active slot is row-locked and
// flipped to booked. Duplicate slots for the same time are allowed, so the
// lookup asks for an unbooked one first and only rejects when every match is
// already booked. Slots stay advisory, so a booking with no matching slot at
// all is still accepted.
func CreateAppointment(c *fiber.Ctx) error {
	var input createAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Name == "" || input.Phone == "" || input.Date == "" || input.Time == "" {
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

	appointment := models.Appointment{
		Name:            input.Name,
		Phone:           input.Phone,
		Email:           input.Email,
		Date:            date,
		Time:            input.Time,
		MeetingPlatform: input.MeetingPlatform,
		Notes:           input.Notes,
		Status:          models.StatusPending,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var slot models.AvailableSlot
		err := lockForUpdate(tx).
			Where("date = ? AND start_time = ? AND active = ? AND is_booked = ?", date, input.Time, true, false).
			First(&slot).Error
		switch {
		case err == nil:
			if err := tx.Model(&slot).Update("is_booked", true).Error; err != nil {
				return err
			}
			appointment.SlotID = &slot.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			var booked int64
			if err := tx.Model(&models.AvailableSlot{}).
				Where("date = ? AND start_time = ? AND active = ?", date, input.Time, true).
				Count(&booked).Error; err != nil {
				return err
			}
			if booked > 0 {
				return errSlotTaken
			}
			// no slot for this time at all, booking proceeds unlinked
		default:
			return err
		}

		return tx.Create(&appointment).Error
	})
	if errors.Is(err, errSlotTaken) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Bu saat için randevu alınmış",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

type updateAppointmentInput struct {
	ID           uint    `json:"id"`
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
	MeetingLink  *string `json:"meetingLink"`
	Date         *string `json:"date"`
	Time         *string `json:"time"`
	PreviousDate *string `json:"previousDate"`
	PreviousTime *string `json:"previousTime"`
}

// needsAutoLink reports whether the approval should synthesize the in-site
// call link: "site" platform, no link stored yet, none supplied in the edit.
func needsAutoLink(a *models.Appointment, newStatus models.AppointmentStatus, supplied *string) bool {
	return newStatus == models.StatusApproved &&
		a.MeetingPlatform == models.PlatformSite &&
		(supplied == nil || *supplied == "") &&
		a.MeetingLink == ""
}

// UpdateAppointment applies a partial admin edit. Status changes go through
// the lifecycle validation, and approving a "site" appointment without an
// explicit link fills in the in-site call URL. Approval and cancellation also
// trigger the client notification after the write; a notification failure is
// logged, never rolled back.
func UpdateAppointment(c *fiber.Ctx) error {
	var input updateAppointmentInput
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

	var appointment models.Appointment
	if err := db.DB.First(&appointment, input.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	updates := map[string]interface{}{}
	statusChanged := false

	if input.Status != nil {
		newStatus := models.AppointmentStatus(*input.Status)
		if err := appointment.CanTransition(newStatus); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Geçersiz durum değişikliği",
				Error:   err.Error(),
			})
		}
		statusChanged = newStatus != appointment.Status
		updates["status"] = newStatus

		if needsAutoLink(&appointment, newStatus, input.MeetingLink) {
			link, err := meetingLinkFor(&appointment)
			if err != nil {
				log.Printf("Failed to build meeting link for appointment %d: %v", appointment.ID, err)
			} else {
				updates["meeting_link"] = link
			}
		}
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.MeetingLink != nil && *input.MeetingLink != "" {
		updates["meeting_link"] = *input.MeetingLink
	}
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
	if input.Time != nil {
		updates["time"] = *input.Time
	}
	if input.PreviousDate != nil {
		if *input.PreviousDate == "" {
			updates["previous_date"] = nil
		} else {
			prev, err := utils.ParseDate(*input.PreviousDate)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
					Message: "Geçersiz tarih",
					Error:   err.Error(),
				})
			}
			updates["previous_date"] = prev
		}
	}
	if input.PreviousTime != nil {
		updates["previous_time"] = *input.PreviousTime
	}

	if err := db.DB.Model(&appointment).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	if err := db.DB.First(&appointment, input.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}

	if statusChanged {
		switch appointment.Status {
		case models.StatusApproved:
			notifyStatusChange(&appointment, utils.NotifyApproval)
		case models.StatusCancelled:
			notifyStatusChange(&appointment, utils.NotifyCancellation)
		}
	}

	return c.JSON(appointment)
}

// notifyStatusChange builds the outbound notification for a fresh status.
// Best effort: the status write has already committed and stays committed.
func notifyStatusChange(a *models.Appointment, t utils.NotificationType) {
	if err := utils.SendAppointmentEmail(a, t); err != nil {
		log.Printf("Failed to send %s email for appointment %d: %v", t, a.ID, err)
	}
	if err := db.DB.Model(a).Update("notification_sent", true).Error; err != nil {
		log.Printf("Failed to flag notification for appointment %d: %v", a.ID, err)
		return
	}
	a.NotificationSent = true
}

// DeleteAppointment removes a record by the ?id= query parameter.
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "ID gerekli",
		})
	}
	if err := db.DB.Where("id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
