package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/murekkephukuk/murekkep-api/models"
)

// NotificationType selects the message template built for an appointment.
type NotificationType string

const (
	NotifyApproval     NotificationType = "approval"
	NotifyCancellation NotificationType = "cancellation"
	NotifyReminder     NotificationType = "reminder"
)

func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotifyApproval, NotifyCancellation, NotifyReminder:
		return true
	}
	return false
}

// WhatsAppLink builds a wa.me deep link pre-filled with message. The admin
// opens the link and sends it manually; nothing is delivered server-side.
func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(message))
}

// NormalizePhone strips everything but digits, so "+90 212 555 01 00" becomes
// the wa.me-compatible "902125550100".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NotificationMessage renders the Turkish client-facing text for the given
// notification type.
func NotificationMessage(a *models.Appointment, t NotificationType) string {
	when := fmt.Sprintf("%s %s", FormatDateTR(a.Date), a.Time)

	switch t {
	case NotifyApproval:
		var b strings.Builder
		if a.Rescheduled() {
			prev := a.PreviousTime
			if a.PreviousDate != nil {
				prev = fmt.Sprintf("%s %s", FormatDateTR(*a.PreviousDate), a.PreviousTime)
			}
			fmt.Fprintf(&b, "Sayın %s, %s tarihli randevunuz %s tarihine alınmış ve onaylanmıştır.", a.Name, prev, when)
		} else {
			fmt.Fprintf(&b, "Sayın %s, %s tarihli randevu talebiniz onaylanmıştır.", a.Name, when)
		}
		switch a.MeetingPlatform {
		case models.PlatformSite:
			fmt.Fprintf(&b, " Görüşme bağlantınız: %s", a.MeetingLink)
		case models.PlatformZoom:
			if a.MeetingLink != "" {
				fmt.Fprintf(&b, " Zoom bağlantınız: %s", a.MeetingLink)
			}
		}
		b.WriteString(" Mürekkep Hukuk Bürosu")
		return b.String()
	case NotifyCancellation:
		return fmt.Sprintf("Sayın %s, %s tarihli randevunuz iptal edilmiştir. Yeni bir randevu oluşturmak için web sitemizi ziyaret edebilirsiniz. Mürekkep Hukuk Bürosu", a.Name, when)
	case NotifyReminder:
		msg := fmt.Sprintf("Sayın %s, %s tarihli randevunuzu hatırlatırız.", a.Name, when)
		if a.MeetingPlatform == models.PlatformSite && a.MeetingLink != "" {
			msg += fmt.Sprintf(" Görüşme bağlantınız: %s", a.MeetingLink)
		}
		return msg + " Mürekkep Hukuk Bürosu"
	}
	return ""
}
