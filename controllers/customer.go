package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/utils"
)

// GetAllCustomers returns customers, scoped to a company when the
// company_id filter is set.
func GetAllCustomers(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Customer{})
	if companyID := c.Query("company_id"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to fetch customers", err))
	}
	return c.JSON(customers)
}

// GetCustomer returns a customer by ID
func GetCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Customer not found", err))
	}
	return c.JSON(customer)
}

// CreateCustomer creates a new customer
func CreateCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}
	if customer.Name == "" || customer.CompanyID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name and company are required",
		})
	}
	customer.IsActive = true
	if err := db.DB.Create(&customer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to create customer", err))
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// UpdateCustomer updates a customer by ID
func UpdateCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Customer not found", err))
	}

	var patch models.Customer
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}
	if err := db.DB.Model(&customer).Updates(patch).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to update customer", err))
	}
	return c.JSON(customer)
}

// DeactivateCustomer marks a customer inactive, keeping their history.
func DeactivateCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Customer not found", err))
	}
	if err := db.DB.Model(&customer).Update("is_active", false).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to deactivate customer", err))
	}
	return c.JSON(customer)
}
