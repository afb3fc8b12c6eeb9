package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/utils"
)

// GetAllPayments returns payments, optionally filtered by company,
// customer and status.
func GetAllPayments(c *fiber.Ctx) error {
	query := db.DB.Preload("Appointment")
	if companyID := c.Query("company_id"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to fetch payments", err))
	}
	return c.JSON(payments)
}

// GetPayment returns a payment by ID
func GetPayment(c *fiber.Ctx) error {
	id := c.Params("id")
	var payment models.Payment
	if err := db.DB.Preload("Appointment").First(&payment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Payment not found", err))
	}
	return c.JSON(payment)
}

// CreatePayment registers a payment against an appointment
func CreatePayment(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}
	if payment.AppointmentID == 0 || payment.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Appointment and a positive amount are required",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, payment.AppointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Appointment not found", err))
	}
	payment.CustomerID = appointment.CustomerID
	payment.CompanyID = appointment.CompanyID

	if err := db.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to create payment", err))
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// MarkPaymentPaid settles a pending payment
func MarkPaymentPaid(c *fiber.Ctx) error {
	id := c.Params("id")
	var payment models.Payment
	if err := db.DB.First(&payment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Payment not found", err))
	}
	if payment.Status != models.PaymentPending {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Only pending payments can be marked as paid",
		})
	}

	now := time.Now()
	payment.Status = models.PaymentPaid
	payment.PaidAt = &now
	if err := db.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to update payment", err))
	}
	return c.JSON(payment)
}

// MarkPaymentRefunded flags a paid payment as refunded. Called after
// the refund decision on the cancellation is processed.
func MarkPaymentRefunded(c *fiber.Ctx) error {
	id := c.Params("id")
	var payment models.Payment
	if err := db.DB.First(&payment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Payment not found", err))
	}
	if payment.Status != models.PaymentPaid {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Only paid payments can be refunded",
		})
	}

	payment.Status = models.PaymentRefunded
	if err := db.DB.Save(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to update payment", err))
	}
	return c.JSON(payment)
}
