package db

import (
	"fmt"
	"log"

	"github.com/murekkephukuk/murekkep-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.SiteSettings{},
		&models.HeroSection{},
		&models.HeroVideo{},
		&models.Service{},
		&models.AboutSection{},
		&models.TeamMember{},
		&models.Testimonial{},
		&models.BlogPost{},
		&models.ContactInfo{},
		&models.AvailableSlot{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
