package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/scheduler"
	"github.com/sparklean/cleaning-api/utils"
)

// GetAllCancellations returns cancellation records, optionally filtered
// by company and refund status.
func GetAllCancellations(c *fiber.Ctx) error {
	query := db.DB.Preload("Appointment")
	if companyID := c.Query("company_id"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}
	if refundStatus := c.Query("refund_status"); refundStatus != "" {
		query = query.Where("refund_status = ?", refundStatus)
	}

	var cancellations []models.Cancellation
	if err := query.Order("cancelled_at desc").Find(&cancellations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to fetch cancellations", err))
	}
	return c.JSON(cancellations)
}

// GetCancellation returns a cancellation by ID
func GetCancellation(c *fiber.Ctx) error {
	id := c.Params("id")
	var cancellation models.Cancellation
	if err := db.DB.Preload("Appointment").First(&cancellation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Cancellation not found", err))
	}
	return c.JSON(cancellation)
}

// UpdateRefundStatus records the refund decision for a cancellation.
// Decisions are final: once processed or rejected they cannot change.
func UpdateRefundStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var input struct {
		RefundStatus models.RefundStatus `json:"refund_status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}

	var cancellation models.Cancellation
	if err := db.DB.Preload("Appointment").First(&cancellation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Cancellation not found", err))
	}

	updated, err := scheduler.SetRefundStatus(cancellation, input.RefundStatus)
	if err != nil {
		if errors.Is(err, scheduler.ErrInvalidRefundTransition) {
			return c.Status(fiber.StatusConflict).JSON(utils.NewError("Refund decision already recorded", err))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to update refund status", err))
	}

	if err := db.DB.Save(&updated).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to save refund status", err))
	}

	// Best effort notice to the customer; the decision stands either way
	go notifyRefundDecision(updated)

	return c.JSON(updated)
}

func notifyRefundDecision(cancellation models.Cancellation) {
	var customer models.Customer
	if err := db.DB.First(&customer, cancellation.CustomerID).Error; err != nil || customer.Email == "" {
		return
	}

	subject := "Update on your cancelled cleaning service"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The refund for your cancelled service has been updated.</p>
		<p><strong>Status:</strong> %s</p>
		<p><strong>Reason for cancellation:</strong> %s</p>
		<p>Best regards,</p>
		<p>Your Cleaning Team</p>
	`, customer.Name, cancellation.RefundStatus, cancellation.Reason)

	if err := utils.SendEmail(customer.Email, subject, body); err != nil {
		fmt.Printf("Failed to send refund notice for cancellation %d: %v\n", cancellation.ID, err)
	}
}
