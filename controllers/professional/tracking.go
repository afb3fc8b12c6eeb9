package professional

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/utils"
)

// ReportPosition records a GPS ping from the professional in the
// field. The mobile app calls this periodically while a job is active.
func ReportPosition(c *fiber.Ctx) error {
	professional, err := currentProfessional(c)
	if professional == nil {
		return err
	}

	var input struct {
		AppointmentID *uint   `json:"appointment_id"`
		Latitude      float64 `json:"latitude"`
		Longitude     float64 `json:"longitude"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Coordinates out of range",
		})
	}

	point := models.TrackingPoint{
		ProfessionalID: professional.ID,
		AppointmentID:  input.AppointmentID,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		RecordedAt:     time.Now(),
	}
	if err := db.DB.Create(&point).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to record position", err))
	}
	return c.Status(fiber.StatusCreated).JSON(point)
}

// GetAppointmentTrack returns the recorded GPS trail for an
// appointment, oldest point first.
func GetAppointmentTrack(c *fiber.Ctx) error {
	appointmentID := c.Params("id")

	var points []models.TrackingPoint
	if err := db.DB.Where("appointment_id = ?", appointmentID).
		Order("recorded_at asc").
		Find(&points).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to fetch tracking points", err))
	}
	return c.JSON(points)
}
