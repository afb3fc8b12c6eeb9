package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/scheduler"
	"github.com/sparklean/cleaning-api/utils"
)

// GetAllAppointments returns appointments, optionally filtered by
// status, company or date range.
func GetAllAppointments(c *fiber.Ctx) error {
	query := db.DB.Preload("Customer").Preload("Team").Preload("Professional")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if companyID := c.Query("company_id"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("start_time >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("start_time < ?", t.AddDate(0, 0, 1))
		}
	}

	var appointments []models.Appointment
	if err := query.Order("start_time asc").Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to fetch appointments", err))
	}
	return c.JSON(appointments)
}

// GetAppointment returns an appointment by ID
func GetAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Customer").Preload("Team").Preload("Professional").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Appointment not found", err))
	}
	return c.JSON(appointment)
}

// CreateAppointment creates a one-off appointment (recurrences
// materialize their own through the scheduler).
func CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}

	if !appointment.EndTime.After(appointment.StartTime) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "End time must be after start time",
		})
	}

	appointment.Status = models.StatusScheduled
	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to create appointment", err))
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// UpdateAppointment updates an appointment's details. Status changes go
// through the lifecycle endpoints, never through here.
func UpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing models.Appointment
	if err := db.DB.First(&existing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Appointment not found", err))
	}

	var patch models.Appointment
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}
	patch.Status = "" // field is managed by the state machine

	if err := db.DB.Model(&existing).Updates(patch).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to update appointment", err))
	}
	return c.JSON(existing)
}

// DeleteAppointment removes an appointment by ID (admin only; soft
// delete through gorm).
func DeleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to delete appointment", err))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckInAppointment moves a scheduled appointment to in_progress and
// opens a check record for the professional on site.
func CheckInAppointment(c *fiber.Ctx) error {
	var input struct {
		ProfessionalID uint    `json:"professional_id"`
		Latitude       float64 `json:"latitude"`
		Longitude      float64 `json:"longitude"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}

	return runTransition(c, models.StatusInProgress, func(ctx *scheduler.TransitionContext) {
		ctx.ProfessionalID = input.ProfessionalID
		ctx.Latitude = input.Latitude
		ctx.Longitude = input.Longitude
	})
}

// CheckOutAppointment completes an in-progress appointment and closes
// its check record.
func CheckOutAppointment(c *fiber.Ctx) error {
	return runTransition(c, models.StatusCompleted, nil)
}

// CancelAppointment cancels a scheduled or in-progress appointment,
// creating the cancellation record and stopping any in-flight check
// record in the same batch.
func CancelAppointment(c *fiber.Ctx) error {
	var input struct {
		Reason string `json:"reason"`
		Notes  string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}

	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	return runTransition(c, models.StatusCancelled, func(ctx *scheduler.TransitionContext) {
		ctx.Reason = input.Reason
		ctx.Notes = input.Notes
		ctx.CancelledByID = userID
		ctx.CancelledByRole = actorRole(role)
	})
}

// runTransition loads the appointment and its active check record,
// runs the state machine and persists the effect batch.
func runTransition(c *fiber.Ctx, target models.AppointmentStatus, customize func(*scheduler.TransitionContext)) error {
	id := c.Params("id")

	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Appointment not found", err))
	}

	store := db.NewSchedulerStore()
	active, err := store.ActiveCheckRecord(appointment.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to load check record", err))
	}

	ctx := scheduler.TransitionContext{
		Now:               time.Now(),
		ActiveCheckRecord: active,
	}
	if customize != nil {
		customize(&ctx)
	}

	// When nothing was paid there is nothing to refund
	if target == models.StatusCancelled {
		paid, err := store.HasPaidPayment(appointment.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to check payments", err))
		}
		if !paid {
			ctx.RefundStatus = models.RefundNotApplicable
		}
	}

	orchestrator := scheduler.NewOrchestrator(store)
	updated, effects, err := orchestrator.ApplyTransition(appointment, target, ctx)
	if err != nil {
		return transitionError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment status updated successfully",
		"appointment": updated,
		"effects":     effects,
	})
}

// transitionError maps scheduler errors onto HTTP statuses.
func transitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduler.ErrMissingCancellationReason):
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Cancellation requires a reason", err))
	case errors.Is(err, scheduler.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(utils.NewError("Invalid status transition", err))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to update appointment status", err))
	}
}

func actorRole(role string) models.ActorRole {
	switch role {
	case "admin":
		return models.ActorAdmin
	case "company":
		return models.ActorCompany
	case "professional":
		return models.ActorCompany // professionals cancel on the company's behalf
	default:
		return models.ActorSystem
	}
}
