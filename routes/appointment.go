package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/controllers"
	"github.com/murekkephukuk/murekkep-api/middleware"
)

// SetupAppointmentRoutes configures appointment, slot and call routes. The
// booking form posts publicly; list, edit, delete and notify belong to the
// admin panel.
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Post("/", controllers.CreateAppointment)
	appointment.Put("/", middleware.Protected(), controllers.UpdateAppointment)
	appointment.Delete("/", middleware.Protected(), controllers.DeleteAppointment)
	appointment.Post("/:id/notify", middleware.Protected(), controllers.NotifyAppointment)

	slot := app.Group("/slots")
	slot.Get("/", controllers.GetAllSlots)
	slot.Post("/", middleware.Protected(), controllers.CreateSlot)
	slot.Post("/bulk", middleware.Protected(), controllers.CreateBulkSlots)
	slot.Put("/", middleware.Protected(), controllers.UpdateSlot)
	slot.Delete("/", middleware.Protected(), controllers.DeleteSlot)

	app.Get("/call/:id", controllers.GetCallRoom)
}
