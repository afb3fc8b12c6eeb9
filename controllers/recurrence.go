package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/scheduler"
	"github.com/sparklean/cleaning-api/utils"
)

// GetAllRecurrences returns recurrences, optionally filtered by company
// and status.
func GetAllRecurrences(c *fiber.Ctx) error {
	query := db.DB.Preload("Customer").Preload("Team")
	if companyID := c.Query("company_id"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var recurrences []models.Recurrence
	if err := query.Find(&recurrences).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to fetch recurrences", err))
	}
	return c.JSON(recurrences)
}

// GetRecurrence returns a recurrence by ID
func GetRecurrence(c *fiber.Ctx) error {
	id := c.Params("id")
	var recurrence models.Recurrence
	if err := db.DB.Preload("Customer").Preload("Team").First(&recurrence, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Recurrence not found", err))
	}
	return c.JSON(recurrence)
}

// CreateRecurrence validates and creates a recurring service contract,
// seeding its first execution date.
func CreateRecurrence(c *fiber.Ctx) error {
	var recurrence models.Recurrence
	if err := c.BodyParser(&recurrence); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}

	if err := scheduler.ValidateDay(recurrence.Frequency, recurrence.Day); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Invalid recurrence day", err))
	}
	if recurrence.StartDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Start date is required",
		})
	}
	if recurrence.Status == "" {
		recurrence.Status = models.RecurrenceActive
	}

	// First occurrence may fall on the start date itself
	next, err := scheduler.ComputeNextExecution(
		recurrence.Frequency, recurrence.Day, recurrence.TimeOfDay,
		recurrence.StartDate.AddDate(0, 0, -1), recurrence.StartDate,
	)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Invalid recurrence definition", err))
	}
	recurrence.NextExecution = &next

	if err := db.DB.Create(&recurrence).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to create recurrence", err))
	}
	return c.Status(fiber.StatusCreated).JSON(recurrence)
}

// recurrencePatch carries the editable recurrence fields. Day is a
// pointer so patching to Sunday (0) is distinguishable from leaving it
// out.
type recurrencePatch struct {
	Title           string                  `json:"title"`
	Frequency       models.Frequency        `json:"frequency"`
	Day             *int                    `json:"day"`
	TimeOfDay       string                  `json:"time_of_day"`
	TeamID          uint                    `json:"team_id"`
	DurationMinutes int                     `json:"duration_minutes"`
	Type            models.RecurrenceType   `json:"type"`
	Status          models.RecurrenceStatus `json:"status"`
}

func applyRecurrencePatch(recurrence *models.Recurrence, patch recurrencePatch) {
	if patch.Title != "" {
		recurrence.Title = patch.Title
	}
	if patch.Frequency != "" {
		recurrence.Frequency = patch.Frequency
	}
	if patch.Day != nil {
		recurrence.Day = *patch.Day
	}
	if patch.TimeOfDay != "" {
		recurrence.TimeOfDay = patch.TimeOfDay
	}
	if patch.TeamID != 0 {
		recurrence.TeamID = patch.TeamID
	}
	if patch.DurationMinutes != 0 {
		recurrence.DurationMinutes = patch.DurationMinutes
	}
	if patch.Type != "" {
		recurrence.Type = patch.Type
	}
	if patch.Status != "" {
		recurrence.Status = patch.Status
	}
}

// UpdateRecurrence updates a recurrence's schedule and recomputes its
// next execution when the definition changed.
func UpdateRecurrence(c *fiber.Ctx) error {
	id := c.Params("id")

	var recurrence models.Recurrence
	if err := db.DB.First(&recurrence, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Recurrence not found", err))
	}

	var patch recurrencePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}
	applyRecurrencePatch(&recurrence, patch)

	if err := scheduler.ValidateDay(recurrence.Frequency, recurrence.Day); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Invalid recurrence day", err))
	}

	// Recompute the next execution against the edited definition
	next, err := scheduler.ComputeNextExecution(
		recurrence.Frequency, recurrence.Day, recurrence.TimeOfDay,
		time.Now(), recurrence.StartDate,
	)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Invalid recurrence definition", err))
	}
	recurrence.NextExecution = &next

	if err := db.DB.Save(&recurrence).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to update recurrence", err))
	}
	return c.JSON(recurrence)
}

// DeactivateRecurrence stops a recurrence from materializing further
// appointments. Recurrences are never hard-deleted; their past
// appointments keep pointing at them.
func DeactivateRecurrence(c *fiber.Ctx) error {
	id := c.Params("id")
	var recurrence models.Recurrence
	if err := db.DB.First(&recurrence, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Recurrence not found", err))
	}

	recurrence.Status = models.RecurrenceInactive
	if err := db.DB.Save(&recurrence).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to deactivate recurrence", err))
	}
	return c.JSON(recurrence)
}

// RunDueRecurrences materializes appointments for every active
// recurrence that is due, on demand. The cron job runs the same logic
// on a schedule.
func RunDueRecurrences(c *fiber.Ctx) error {
	now := time.Now()

	var due []models.Recurrence
	if err := db.DB.Preload("Customer").
		Where("status = ? AND next_execution IS NOT NULL AND next_execution <= ?", models.RecurrenceActive, now).
		Find(&due).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to load due recurrences", err))
	}

	orchestrator := scheduler.NewOrchestrator(db.NewSchedulerStore())
	report := orchestrator.RunDue(due, now)

	status := fiber.StatusOK
	if len(report.Failures) > 0 {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(report)
}
