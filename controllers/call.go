package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/middleware"
	"github.com/murekkephukuk/murekkep-api/models"
	"github.com/murekkephukuk/murekkep-api/utils"
)

const (
	jitsiDomain  = "meet.jit.si"
	roomNameStub = "MurekkepHukuk_%d"
	// room tokens outlive the appointment day by this much, then the link dies
	roomTokenGrace = 48 * time.Hour
)

// meetingLinkFor builds the in-site call URL stored on an appointment at
// approval time. The embedded room token is what the call endpoint checks, so
// only clients holding the mailed link can join.
func meetingLinkFor(a *models.Appointment) (string, error) {
	room := fmt.Sprintf(roomNameStub, a.ID)
	token, err := newRoomToken(room, a.Name, a.Date.Add(roomTokenGrace))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/call/%d?token=%s", BaseURL(), a.ID, token), nil
}

// GetCallRoom gates the in-site video call. Only an approved appointment on
// the "site" platform gets room config, and the ?token= issued at approval is
// required, so a guessed appointment id alone is not enough to join.
func GetCallRoom(c *fiber.Ctx) error {
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Randevu bulunamadı",
			Error:   err.Error(),
		})
	}

	if appointment.Status != models.StatusApproved {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Bu randevu henüz onaylanmamış",
		})
	}
	if appointment.MeetingPlatform != models.PlatformSite {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Bu randevu site üzerinden görüşme için ayarlanmamış",
		})
	}

	roomName := fmt.Sprintf(roomNameStub, appointment.ID)

	token := c.Query("token")
	room, err := ValidateRoomToken(token)
	if err != nil || room != roomName {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Geçersiz görüşme anahtarı",
		})
	}

	return c.JSON(fiber.Map{
		"roomName":    roomName,
		"domain":      jitsiDomain,
		"displayName": appointment.Name,
		"date":        appointment.Date,
		"time":        appointment.Time,
		"token":       token,
	})
}

// newRoomToken signs a participant token bound to one room.
func newRoomToken(room, displayName string, expiry time.Time) (string, error) {
	claims := jwt.MapClaims{
		"room": room,
		"name": displayName,
		"exp":  expiry.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(middleware.Secret()))
}

// ValidateRoomToken checks a participant token and returns the room it grants.
func ValidateRoomToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(middleware.Secret()), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid room token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid room token claims")
	}
	room, ok := claims["room"].(string)
	if !ok || room == "" {
		return "", fmt.Errorf("room claim missing")
	}
	return room, nil
}
