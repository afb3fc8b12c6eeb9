package company

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/utils"
)

// GetProfile returns the logged-in company's profile
func GetProfile(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Company ID not found in context",
		})
	}

	var company models.Company
	if err := db.DB.First(&company, companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Company not found", err))
	}
	return c.JSON(company)
}

// CreateProfile registers a new company and links it to the logged-in
// user account.
func CreateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}
	if company.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Company name is required",
		})
	}
	company.IsActive = true

	if err := db.DB.Create(&company).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to create company", err))
	}
	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).Update("company_id", company.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to link company to user", err))
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// UpdateProfile updates the logged-in company's profile
func UpdateProfile(c *fiber.Ctx) error {
	companyID, ok := c.Locals("companyID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Company ID not found in context",
		})
	}

	var company models.Company
	if err := db.DB.First(&company, companyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Company not found", err))
	}

	var patch models.Company
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}
	if err := db.DB.Model(&company).Updates(patch).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to update company", err))
	}
	return c.JSON(company)
}
