package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/controllers"
	"github.com/sparklean/cleaning-api/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments", middleware.Protected())

	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Post("/", middleware.RequirePermission("appointments", "create"), controllers.CreateAppointment)
	appointment.Patch("/:id", middleware.RequirePermission("appointments", "update"), controllers.UpdateAppointment)
	appointment.Delete("/:id", middleware.RequirePermission("appointments", "delete"), controllers.DeleteAppointment)

	// Lifecycle transitions
	appointment.Post("/:id/check-in", controllers.CheckInAppointment)
	appointment.Post("/:id/check-out", controllers.CheckOutAppointment)
	appointment.Post("/:id/cancel", controllers.CancelAppointment)
}
