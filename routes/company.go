package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/controllers"
	"github.com/sparklean/cleaning-api/controllers/company"
	"github.com/sparklean/cleaning-api/middleware"
)

// SetupCompanyRoutes configures the company portal and its managed
// resources (customers, teams, payments, feedback).
func SetupCompanyRoutes(app *fiber.App) {
	companyGroup := app.Group("/company", middleware.Protected())
	companyGroup.Get("/profile", company.GetProfile)
	companyGroup.Post("/profile", company.CreateProfile)
	companyGroup.Patch("/profile", company.UpdateProfile)
	companyGroup.Get("/dashboard", company.GetDashboardOverview)
	companyGroup.Get("/dashboard/recent", company.GetRecentAppointments)
	companyGroup.Get("/appointments/upcoming", company.GetUpcomingAppointments)
	companyGroup.Get("/recurrences", company.GetRecurrences)

	customers := app.Group("/customers", middleware.Protected())
	customers.Get("/", controllers.GetAllCustomers)
	customers.Get("/:id", controllers.GetCustomer)
	customers.Post("/", middleware.RequirePermission("customers", "create"), controllers.CreateCustomer)
	customers.Patch("/:id", middleware.RequirePermission("customers", "update"), controllers.UpdateCustomer)
	customers.Delete("/:id", middleware.RequirePermission("customers", "update"), controllers.DeactivateCustomer)

	teams := app.Group("/teams", middleware.Protected())
	teams.Get("/", controllers.GetAllTeams)
	teams.Get("/:id", controllers.GetTeam)
	teams.Post("/", middleware.RequirePermission("teams", "create"), controllers.CreateTeam)
	teams.Patch("/:id", middleware.RequirePermission("teams", "update"), controllers.UpdateTeam)
	teams.Post("/:id/professionals", middleware.RequirePermission("teams", "update"), controllers.AddProfessionalToTeam)
	teams.Delete("/:id/professionals/:professionalId", middleware.RequirePermission("teams", "update"), controllers.RemoveProfessionalFromTeam)

	payments := app.Group("/payments", middleware.Protected())
	payments.Get("/", controllers.GetAllPayments)
	payments.Get("/:id", controllers.GetPayment)
	payments.Post("/", middleware.RequirePermission("payments", "create"), controllers.CreatePayment)
	payments.Post("/:id/paid", middleware.RequirePermission("payments", "update"), controllers.MarkPaymentPaid)
	payments.Post("/:id/refunded", middleware.RequirePermission("payments", "update"), controllers.MarkPaymentRefunded)

	feedback := app.Group("/feedback")
	feedback.Get("/", middleware.Protected(), controllers.GetAllFeedback)
	feedback.Post("/", controllers.CreateFeedback)
	feedback.Get("/company/:companyId/rating", controllers.GetCompanyRating)
}
