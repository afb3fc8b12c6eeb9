package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/utils"
)

// GetAllFeedback returns feedback entries, optionally filtered by
// company or professional.
func GetAllFeedback(c *fiber.Ctx) error {
	query := db.DB.Preload("Customer").Preload("Appointment")
	if companyID := c.Query("company_id"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}
	if professionalID := c.Query("professional_id"); professionalID != "" {
		query = query.Where("professional_id = ?", professionalID)
	}

	var feedback []models.Feedback
	if err := query.Order("created_at desc").Find(&feedback).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to fetch feedback", err))
	}
	return c.JSON(feedback)
}

// CreateFeedback records a customer's rating of a completed job
func CreateFeedback(c *fiber.Ctx) error {
	var feedback models.Feedback
	if err := c.BodyParser(&feedback); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, feedback.AppointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Appointment not found", err))
	}
	if appointment.Status != models.StatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Feedback is only accepted for completed appointments",
		})
	}

	feedback.CustomerID = appointment.CustomerID
	feedback.CompanyID = appointment.CompanyID

	if err := db.DB.Create(&feedback).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to create feedback", err))
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// GetCompanyRating returns the average rating for a company
func GetCompanyRating(c *fiber.Ctx) error {
	companyID := c.Params("companyId")

	var result struct {
		Average float64 `json:"average"`
		Count   int64   `json:"count"`
	}
	if err := db.DB.Model(&models.Feedback{}).
		Where("company_id = ?", companyID).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(*) as count").
		Scan(&result).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to compute rating", err))
	}
	return c.JSON(result)
}
