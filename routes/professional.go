package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/controllers"
	"github.com/sparklean/cleaning-api/controllers/professional"
	"github.com/sparklean/cleaning-api/middleware"
)

// SetupProfessionalRoutes configures the field worker portal
func SetupProfessionalRoutes(app *fiber.App) {
	pro := app.Group("/professional", middleware.Protected())

	pro.Get("/profile", professional.GetProfile)
	pro.Get("/jobs/upcoming", professional.GetUpcomingJobs)
	pro.Get("/jobs/history", professional.GetJobHistory)

	// Field workers drive the job lifecycle from their phones
	pro.Post("/jobs/:id/check-in", controllers.CheckInAppointment)
	pro.Post("/jobs/:id/check-out", controllers.CheckOutAppointment)

	pro.Post("/tracking", professional.ReportPosition)
	pro.Get("/tracking/appointment/:id", professional.GetAppointmentTrack)
}
