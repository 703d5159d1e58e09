package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Each test gets its own in-memory database behind the package-level handle.
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Appointment{}, &models.AvailableSlot{}))
	db.DB = gdb
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/appointments", CreateAppointment)
	app.Put("/appointments", UpdateAppointment)
	app.Delete("/slots", DeleteSlot)
	app.Get("/call/:id", GetCallRoom)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func bookingBody(date, clock string) fiber.Map {
	return fiber.Map{
		"name":            "Ahmet Özdemir",
		"phone":           "+90 532 111 22 33",
		"date":            date,
		"time":            clock,
		"meetingPlatform": "whatsapp",
	}
}

func TestCreateAppointmentBooksMatchingSlot(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	slot := models.AvailableSlot{Date: mustDate(t, "2030-05-06"), StartTime: "10:00", EndTime: "11:00", Active: true}
	require.NoError(t, db.DB.Create(&slot).Error)

	resp := doJSON(t, app, "POST", "/appointments", bookingBody("2030-05-06", "10:00"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Appointment
	decodeJSON(t, resp, &created)
	assert.Equal(t, models.StatusPending, created.Status)
	require.NotNil(t, created.SlotID)
	assert.Equal(t, slot.ID, *created.SlotID)

	var stored models.AvailableSlot
	require.NoError(t, db.DB.First(&stored, slot.ID).Error)
	assert.True(t, stored.IsBooked)
}

func TestCreateAppointmentWithoutMatchingSlot(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	resp := doJSON(t, app, "POST", "/appointments", bookingBody("2030-05-06", "10:00"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Appointment
	decodeJSON(t, resp, &created)
	assert.Nil(t, created.SlotID)
	assert.Equal(t, models.StatusPending, created.Status)

	var count int64
	require.NoError(t, db.DB.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateAppointmentSecondBookingConflicts(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	slot := models.AvailableSlot{Date: mustDate(t, "2030-05-06"), StartTime: "10:00", EndTime: "11:00", Active: true}
	require.NoError(t, db.DB.Create(&slot).Error)

	first := doJSON(t, app, "POST", "/appointments", bookingBody("2030-05-06", "10:00"))
	require.Equal(t, fiber.StatusCreated, first.StatusCode)

	second := doJSON(t, app, "POST", "/appointments", bookingBody("2030-05-06", "10:00"))
	require.Equal(t, fiber.StatusConflict, second.StatusCode)

	var body utils.ErrorResponse
	decodeJSON(t, second, &body)
	assert.Equal(t, "Bu saat için randevu alınmış", body.Message)

	var count int64
	require.NoError(t, db.DB.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateAppointmentPrefersFreeDuplicateSlot(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	booked := models.AvailableSlot{Date: mustDate(t, "2030-05-06"), StartTime: "10:00", EndTime: "11:00", Active: true, IsBooked: true}
	require.NoError(t, db.DB.Create(&booked).Error)
	free := models.AvailableSlot{Date: mustDate(t, "2030-05-06"), StartTime: "10:00", EndTime: "11:00", Active: true}
	require.NoError(t, db.DB.Create(&free).Error)

	resp := doJSON(t, app, "POST", "/appointments", bookingBody("2030-05-06", "10:00"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Appointment
	decodeJSON(t, resp, &created)
	require.NotNil(t, created.SlotID)
	assert.Equal(t, free.ID, *created.SlotID)

	var stored models.AvailableSlot
	require.NoError(t, db.DB.First(&stored, free.ID).Error)
	assert.True(t, stored.IsBooked)
}

func TestDeleteBookedSlotSucceeds(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	slot := models.AvailableSlot{Date: mustDate(t, "2030-05-06"), StartTime: "10:00", EndTime: "11:00", Active: true}
	require.NoError(t, db.DB.Create(&slot).Error)

	resp := doJSON(t, app, "POST", "/appointments", bookingBody("2030-05-06", "10:00"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created models.Appointment
	decodeJSON(t, resp, &created)

	del := doJSON(t, app, "DELETE", fmt.Sprintf("/slots?id=%d", slot.ID), nil)
	require.Equal(t, fiber.StatusOK, del.StatusCode)

	err := db.DB.First(&models.AvailableSlot{}, slot.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// the appointment keeps its own date/time copy
	var kept models.Appointment
	require.NoError(t, db.DB.First(&kept, created.ID).Error)
	assert.Equal(t, "10:00", kept.Time)
}

func TestApproveSiteAppointmentFillsMeetingLink(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	appointment := models.Appointment{
		Name:            "Ahmet Özdemir",
		Phone:           "+90 532 111 22 33",
		Date:            mustDate(t, "2030-05-06"),
		Time:            "10:00",
		MeetingPlatform: models.PlatformSite,
		Status:          models.StatusPending,
	}
	require.NoError(t, db.DB.Create(&appointment).Error)

	resp := doJSON(t, app, "PUT", "/appointments", fiber.Map{"id": appointment.ID, "status": "approved"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Appointment
	decodeJSON(t, resp, &updated)
	assert.Equal(t, models.StatusApproved, updated.Status)

	parsed, err := url.Parse(updated.MeetingLink)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("/call/%d", appointment.ID), parsed.Path)
	assert.NotEmpty(t, parsed.Query().Get("token"))
}

func TestUpdateAppointmentRejectsInvalidTransition(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	appointment := models.Appointment{
		Name:   "Ahmet Özdemir",
		Phone:  "+90 532 111 22 33",
		Date:   mustDate(t, "2030-05-06"),
		Time:   "10:00",
		Status: models.StatusCompleted,
	}
	require.NoError(t, db.DB.Create(&appointment).Error)

	resp := doJSON(t, app, "PUT", "/appointments", fiber.Map{"id": appointment.ID, "status": "approved"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCallRoomRejectsPendingAppointment(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	appointment := models.Appointment{
		Name:            "Ahmet Özdemir",
		Phone:           "+90 532 111 22 33",
		Date:            mustDate(t, "2030-05-06"),
		Time:            "10:00",
		MeetingPlatform: models.PlatformSite,
		Status:          models.StatusPending,
	}
	require.NoError(t, db.DB.Create(&appointment).Error)

	resp := doJSON(t, app, "GET", fmt.Sprintf("/call/%d", appointment.ID), nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body utils.ErrorResponse
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Bu randevu henüz onaylanmamış", body.Message)
}

func TestCallRoomRequiresApprovalToken(t *testing.T) {
	setupTestDB(t)
	app := newTestApp()

	appointment := models.Appointment{
		Name:            "Ahmet Özdemir",
		Phone:           "+90 532 111 22 33",
		Date:            mustDate(t, "2030-05-06"),
		Time:            "10:00",
		MeetingPlatform: models.PlatformSite,
		Status:          models.StatusPending,
	}
	require.NoError(t, db.DB.Create(&appointment).Error)

	resp := doJSON(t, app, "PUT", "/appointments", fiber.Map{"id": appointment.ID, "status": "approved"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var approved models.Appointment
	decodeJSON(t, resp, &approved)

	parsed, err := url.Parse(approved.MeetingLink)
	require.NoError(t, err)
	token := parsed.Query().Get("token")
	require.NotEmpty(t, token)

	// no token → closed
	bare := doJSON(t, app, "GET", fmt.Sprintf("/call/%d", appointment.ID), nil)
	require.Equal(t, fiber.StatusForbidden, bare.StatusCode)
	var body utils.ErrorResponse
	decodeJSON(t, bare, &body)
	assert.Equal(t, "Geçersiz görüşme anahtarı", body.Message)

	// the token from the stored link opens the room
	ok := doJSON(t, app, "GET", fmt.Sprintf("/call/%d?token=%s", appointment.ID, url.QueryEscape(token)), nil)
	require.Equal(t, fiber.StatusOK, ok.StatusCode)

	var room struct {
		RoomName string `json:"roomName"`
		Domain   string `json:"domain"`
	}
	decodeJSON(t, ok, &room)
	assert.Equal(t, fmt.Sprintf("MurekkepHukuk_%d", appointment.ID), room.RoomName)
	assert.Equal(t, "meet.jit.si", room.Domain)
}

func TestNeedsAutoLink(t *testing.T) {
	site := &models.Appointment{MeetingPlatform: models.PlatformSite, Status: models.StatusPending}
	assert.True(t, needsAutoLink(site, models.StatusApproved, nil))

	empty := ""
	assert.True(t, needsAutoLink(site, models.StatusApproved, &empty))

	explicit := "https://meet.example.com/x"
	assert.False(t, needsAutoLink(site, models.StatusApproved, &explicit))

	assert.False(t, needsAutoLink(site, models.StatusCancelled, nil))

	whatsapp := &models.Appointment{MeetingPlatform: models.PlatformWhatsApp}
	assert.False(t, needsAutoLink(whatsapp, models.StatusApproved, nil))

	linked := &models.Appointment{MeetingPlatform: models.PlatformSite, MeetingLink: "https://x"}
	assert.False(t, needsAutoLink(linked, models.StatusApproved, nil))
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := utils.ParseDate(s)
	require.NoError(t, err)
	return date
}
