package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/murekkephukuk/murekkep-api/controllers"
	"github.com/murekkephukuk/murekkep-api/middleware"
)

// SetupContentRoutes configures the public content reads and the protected
// admin CRUD for every site section.
func SetupContentRoutes(app *fiber.App) {
	settings := app.Group("/settings")
	settings.Get("/", controllers.GetSettings)
	settings.Post("/", middleware.Protected(), controllers.CreateSettings)
	settings.Put("/", middleware.Protected(), controllers.UpdateSettings)

	hero := app.Group("/hero")
	hero.Get("/", controllers.GetHero)
	hero.Post("/", middleware.Protected(), controllers.CreateHero)
	hero.Put("/", middleware.Protected(), controllers.UpdateHero)

	heroVideos := app.Group("/hero-videos")
	heroVideos.Get("/", controllers.GetHeroVideos)
	heroVideos.Post("/import", middleware.Protected(), controllers.ImportHeroVideos)

	about := app.Group("/about")
	about.Get("/", controllers.GetAbout)
	about.Post("/", middleware.Protected(), controllers.CreateAbout)
	about.Put("/", middleware.Protected(), controllers.UpdateAbout)

	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.Protected(), controllers.CreateService)
	service.Put("/", middleware.Protected(), controllers.UpdateService)
	service.Delete("/", middleware.Protected(), controllers.DeleteService)

	team := app.Group("/team")
	team.Get("/", controllers.GetAllTeamMembers)
	team.Post("/", middleware.Protected(), controllers.CreateTeamMember)
	team.Put("/", middleware.Protected(), controllers.UpdateTeamMember)
	team.Delete("/", middleware.Protected(), controllers.DeleteTeamMember)

	testimonial := app.Group("/testimonials")
	testimonial.Get("/", controllers.GetAllTestimonials)
	testimonial.Post("/", middleware.Protected(), controllers.CreateTestimonial)
	testimonial.Put("/", middleware.Protected(), controllers.UpdateTestimonial)
	testimonial.Delete("/", middleware.Protected(), controllers.DeleteTestimonial)

	blog := app.Group("/blog")
	blog.Get("/", controllers.GetAllBlogPosts)
	blog.Get("/:slug", controllers.GetBlogPost)
	blog.Post("/", middleware.Protected(), controllers.CreateBlogPost)
	blog.Put("/", middleware.Protected(), controllers.UpdateBlogPost)
	blog.Delete("/", middleware.Protected(), controllers.DeleteBlogPost)

	contact := app.Group("/contact")
	contact.Get("/", controllers.GetContact)
	contact.Post("/", middleware.Protected(), controllers.CreateContact)
	contact.Put("/", middleware.Protected(), controllers.UpdateContact)

	app.Post("/upload", middleware.Protected(), controllers.UploadFile)
	app.Get("/seed", controllers.SeedDatabase)
}
