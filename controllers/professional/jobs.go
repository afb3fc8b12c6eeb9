package professional

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/utils"
)

// currentProfessional resolves the professional profile of the
// logged-in user. On failure the error response has already been
// written.
func currentProfessional(c *fiber.Ctx) (*models.Professional, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var professional models.Professional
	if err := db.DB.Where("user_id = ?", userID).First(&professional).Error; err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No professional profile for this user",
		})
	}
	return &professional, nil
}

// GetUpcomingJobs returns the professional's team jobs that have not
// started yet, nearest first.
func GetUpcomingJobs(c *fiber.Ctx) error {
	professional, err := currentProfessional(c)
	if professional == nil {
		return err
	}
	if professional.TeamID == nil {
		return c.JSON([]models.Appointment{})
	}

	now := time.Now()
	startDate := now
	endDate := now.AddDate(0, 1, 0)

	switch c.Query("filter", "month") {
	case "today":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		endDate = startDate.AddDate(0, 0, 1)
	case "week":
		endDate = now.AddDate(0, 0, 7)
	case "month":
		endDate = now.AddDate(0, 1, 0)
	}

	limit := 10
	if parsed := c.QueryInt("limit"); parsed > 0 {
		limit = parsed
	}

	var appointments []models.Appointment
	if err := db.DB.Preload("Customer").
		Where("team_id = ?", *professional.TeamID).
		Where("start_time >= ? AND start_time < ?", startDate, endDate).
		Where("status = ?", models.StatusScheduled).
		Order("start_time asc").
		Limit(limit).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to fetch upcoming jobs", err))
	}
	return c.JSON(appointments)
}

// jobHistoryQuery restricts history to finished work. The optional
// status filter narrows within completed/cancelled; it never widens
// history to live jobs.
func jobHistoryQuery(tx *gorm.DB, teamID uint, status string) *gorm.DB {
	query := tx.Model(&models.Appointment{}).
		Where("team_id = ?", teamID).
		Where("status IN ?", []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return query
}

// GetJobHistory returns the professional's past team jobs, newest
// first.
func GetJobHistory(c *fiber.Ctx) error {
	professional, err := currentProfessional(c)
	if professional == nil {
		return err
	}
	if professional.TeamID == nil {
		return c.JSON([]models.Appointment{})
	}

	limit := 20
	if parsed := c.QueryInt("limit"); parsed > 0 {
		limit = parsed
	}

	query := jobHistoryQuery(db.DB, *professional.TeamID, c.Query("status"))

	var appointments []models.Appointment
	if err := query.Preload("Customer").Order("start_time desc").Limit(limit).Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to fetch job history", err))
	}
	return c.JSON(appointments)
}

// GetProfile returns the professional profile of the logged-in user
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var professional models.Professional
	if err := db.DB.Preload("User").Preload("Company").
		Where("user_id = ?", userID).First(&professional).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("No professional profile for this user", err))
	}
	return c.JSON(professional)
}
