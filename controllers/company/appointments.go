package company

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
)

// GetUpcomingAppointments returns the company's scheduled appointments
// in the coming days, nearest first.
func GetUpcomingAppointments(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Company ID not found in context",
		})
	}

	days := 7
	if parsed := c.QueryInt("days"); parsed > 0 {
		days = parsed
	}
	now := time.Now()

	var appointments []models.Appointment
	if err := db.DB.Preload("Customer").Preload("Team").
		Where("company_id = ?", companyID).
		Where("status = ?", models.StatusScheduled).
		Where("start_time >= ? AND start_time < ?", now, now.AddDate(0, 0, days)).
		Order("start_time asc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch upcoming appointments",
		})
	}
	return c.JSON(appointments)
}

// GetRecurrences returns the company's recurring service contracts
func GetRecurrences(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Company ID not found in context",
		})
	}

	query := db.DB.Preload("Customer").Preload("Team").
		Where("company_id = ?", companyID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var recurrences []models.Recurrence
	if err := query.Order("next_execution asc").Find(&recurrences).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch recurrences",
		})
	}
	return c.JSON(recurrences)
}
