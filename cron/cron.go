package cron

import (
	"log"
	"time"

	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs starts the scheduler that mails day-before reminders for
// approved appointments.
func StartCronJobs() {
	c := cron.New()
	// Hourly sweep; SendReminders skips anything already flagged.
	_, err := c.AddFunc("0 * * * *", SendReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// SendReminders finds approved appointments happening tomorrow whose reminder
// has not gone out yet, mails the client and flags reminder_sent. WhatsApp
// reminders stay manual: the admin panel builds those links on demand.
func SendReminders() {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Truncate(24 * time.Hour)

	var appointments []models.Appointment
	err := db.DB.
		Where("status = ? AND reminder_sent = ? AND date = ?", models.StatusApproved, false, tomorrow).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.Email == "" {
			continue
		}
		if err := utils.SendAppointmentEmail(&appointment, utils.NotifyReminder); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		if err := db.DB.Model(&appointment).Update("reminder_sent", true).Error; err != nil {
			log.Printf("Failed to flag reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.Email)
	}
}
