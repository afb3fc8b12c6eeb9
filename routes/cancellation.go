package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/controllers"
	"github.com/sparklean/cleaning-api/middleware"
)

// SetupCancellationRoutes configures cancellation and refund routes
func SetupCancellationRoutes(app *fiber.App) {
	cancellation := app.Group("/cancellations", middleware.Protected())

	cancellation.Get("/", controllers.GetAllCancellations)
	cancellation.Get("/:id", controllers.GetCancellation)
	cancellation.Patch("/:id/refund", middleware.RequirePermission("cancellations", "update"), controllers.UpdateRefundStatus)
}
