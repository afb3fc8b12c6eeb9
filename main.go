package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/sparklean/cleaning-api/cron"
	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/redis"
	"github.com/sparklean/cleaning-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupRecurrenceRoutes(app)
	routes.SetupCancellationRoutes(app)
	routes.SetupCompanyRoutes(app)
	routes.SetupProfessionalRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
