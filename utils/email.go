package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/murekkephukuk/murekkep-api/models"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetAddressHeader("From", os.Getenv("EMAIL_USER"), "Mürekkep Hukuk")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendAppointmentEmail mails the notification text to the client, when the
// booking form collected an address. Best effort; callers log and move on.
func SendAppointmentEmail(a *models.Appointment, t NotificationType) error {
	if a.Email == "" {
		return nil
	}

	var subject string
	switch t {
	case NotifyApproval:
		subject = "Randevunuz Onaylandı - Mürekkep Hukuk"
	case NotifyCancellation:
		subject = "Randevunuz İptal Edildi - Mürekkep Hukuk"
	case NotifyReminder:
		subject = "Randevu Hatırlatması - Mürekkep Hukuk"
	default:
		return fmt.Errorf("unknown notification type %q", t)
	}

	body := fmt.Sprintf("<p>%s</p>", NotificationMessage(a, t))
	return SendEmail(a.Email, subject, body)
}
