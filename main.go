package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/murekkephukuk/murekkep-api/cache"
	"github.com/murekkephukuk/murekkep-api/cron"
	"github.com/murekkephukuk/murekkep-api/db"
	"github.com/murekkephukuk/murekkep-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	cache.Init()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	// Local uploads land here; the frontend references them as /uploads/...
	app.Static("/uploads", "./public/uploads")

	routes.SetupAuthRoutes(app)
	routes.SetupContentRoutes(app)
	routes.SetupAppointmentRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
