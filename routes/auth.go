package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/controllers"
	"github.com/murekkephukuk/murekkep-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Put("/profile", middleware.Protected(), controllers.UpdateProfile)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
