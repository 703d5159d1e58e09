package utils

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppointment() models.Appointment {
	return models.Appointment{
		Name:            "Ahmet Özdemir",
		Phone:           "+90 532 111 22 33",
		Date:            time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC),
		Time:            "10:00",
		MeetingPlatform: models.PlatformWhatsApp,
		Status:          models.StatusApproved,
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "905321112233", NormalizePhone("+90 532 111 22 33"))
	assert.Equal(t, "02125550100", NormalizePhone("(0212) 555-01-00"))
	assert.Equal(t, "", NormalizePhone("ara beni"))
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+90 532 111 22 33", "Sayın Ahmet, randevunuz onaylanmıştır.")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/905321112233", parsed.Path)
	assert.Equal(t, "Sayın Ahmet, randevunuz onaylanmıştır.", parsed.Query().Get("text"))
}

func TestApprovalMessage(t *testing.T) {
	a := testAppointment()
	msg := NotificationMessage(&a, NotifyApproval)

	assert.Contains(t, msg, "Ahmet Özdemir")
	assert.Contains(t, msg, "07.04.2025 10:00")
	assert.Contains(t, msg, "onaylanmıştır")
	assert.NotContains(t, msg, "iptal")
}

func TestApprovalMessageIncludesSiteLink(t *testing.T) {
	a := testAppointment()
	a.MeetingPlatform = models.PlatformSite
	a.MeetingLink = "https://murekkephukuk.vercel.app/call/7"

	msg := NotificationMessage(&a, NotifyApproval)
	assert.Contains(t, msg, "https://murekkephukuk.vercel.app/call/7")
}

func TestApprovalMessageRescheduled(t *testing.T) {
	a := testAppointment()
	prev := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	a.PreviousDate = &prev
	a.PreviousTime = "14:00"

	msg := NotificationMessage(&a, NotifyApproval)
	assert.Contains(t, msg, "01.04.2025 14:00")
	assert.Contains(t, msg, "07.04.2025 10:00")
	assert.True(t, strings.Contains(msg, "alınmış"), "rescheduled wording expected: %s", msg)
}

func TestCancellationMessage(t *testing.T) {
	a := testAppointment()
	msg := NotificationMessage(&a, NotifyCancellation)
	assert.Contains(t, msg, "iptal edilmiştir")
}

func TestReminderMessage(t *testing.T) {
	a := testAppointment()
	msg := NotificationMessage(&a, NotifyReminder)
	assert.Contains(t, msg, "hatırlatırız")
	assert.NotContains(t, msg, "Görüşme bağlantınız")

	a.MeetingPlatform = models.PlatformSite
	a.MeetingLink = "https://murekkephukuk.vercel.app/call/7"
	msg = NotificationMessage(&a, NotifyReminder)
	assert.Contains(t, msg, a.MeetingLink)
}

func TestValidNotificationType(t *testing.T) {
	assert.True(t, ValidNotificationType(NotifyApproval))
	assert.True(t, ValidNotificationType(NotifyCancellation))
	assert.True(t, ValidNotificationType(NotifyReminder))
	assert.False(t, ValidNotificationType("sms"))
	assert.False(t, ValidNotificationType(""))
}
