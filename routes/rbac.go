package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/controllers"
	"github.com/sparklean/cleaning-api/middleware"
)

// SetupRBACRoutes configures role and permission management routes
func SetupRBACRoutes(app *fiber.App) {
	rbac := app.Group("/rbac", middleware.Protected(), middleware.RequireRole("admin"))

	rbac.Post("/roles", controllers.CreateRole)
	rbac.Get("/roles", controllers.GetRoles)
	rbac.Post("/permissions", controllers.CreatePermission)
	rbac.Get("/permissions", controllers.GetPermissions)
	rbac.Post("/assign-permission", controllers.AssignPermissionToRole)
}
