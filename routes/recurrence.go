package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/controllers"
	"github.com/sparklean/cleaning-api/middleware"
)

// SetupRecurrenceRoutes configures recurring service contract routes
func SetupRecurrenceRoutes(app *fiber.App) {
	recurrence := app.Group("/recurrences", middleware.Protected())

	recurrence.Get("/", controllers.GetAllRecurrences)
	recurrence.Get("/:id", controllers.GetRecurrence)
	recurrence.Post("/", middleware.RequirePermission("recurrences", "create"), controllers.CreateRecurrence)
	recurrence.Patch("/:id", middleware.RequirePermission("recurrences", "update"), controllers.UpdateRecurrence)
	recurrence.Delete("/:id", middleware.RequirePermission("recurrences", "update"), controllers.DeactivateRecurrence)

	// Manual trigger for the materialization run the cron job performs
	recurrence.Post("/run", middleware.RequireRole("admin", "company"), controllers.RunDueRecurrences)
}
