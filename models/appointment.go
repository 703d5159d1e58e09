package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

type MeetingPlatform string

const (
	PlatformWhatsApp MeetingPlatform = "whatsapp"
	PlatformTelegram MeetingPlatform = "telegram"
	PlatformZoom     MeetingPlatform = "zoom"
	PlatformSite     MeetingPlatform = "site"
)

// Appointment is a client-submitted consultation request. Date holds the
// calendar day, Time the "15:04" start of the slot the client picked.
type Appointment struct {
	gorm.Model
	Name             string            `json:"name"`
	Phone            string            `json:"phone"`
	Email            string            `json:"email,omitempty"`
	Date             time.Time         `json:"date"`
	Time             string            `json:"time"`
	MeetingPlatform  MeetingPlatform   `json:"meetingPlatform"`
	MeetingLink      string            `json:"meetingLink,omitempty"`
	Status           AppointmentStatus `json:"status"`
	Notes            string            `json:"notes,omitempty"`
	NotificationSent bool              `json:"notificationSent"`
	ReminderSent     bool              `json:"reminderSent"`
	PreviousDate     *time.Time        `json:"previousDate,omitempty"`
	PreviousTime     string            `json:"previousTime,omitempty"`
	SlotID           *uint             `json:"slotId,omitempty"`
	Slot             *AvailableSlot    `json:"slot,omitempty" gorm:"foreignKey:SlotID"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition validates a lifecycle move. Setting the current status again
// is allowed so that admin re-saves don't fail; cancelled and completed are
// terminal.
func (a *Appointment) CanTransition(newStatus AppointmentStatus) error {
	if !ValidStatus(newStatus) {
		return fmt.Errorf("unknown status %q", newStatus)
	}
	if newStatus == a.Status {
		return nil
	}
	switch a.Status {
	case StatusPending:
		if newStatus != StatusApproved && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusApproved:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from approved to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}
	return nil
}

// Rescheduled reports whether the appointment was moved after booking, based
// on the previous date/time snapshot taken when the admin changes the slot.
func (a *Appointment) Rescheduled() bool {
	return a.PreviousDate != nil || a.PreviousTime != ""
}
