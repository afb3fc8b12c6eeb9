package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sparklean/cleaning-api/db"
	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/utils"
)

// GetAllTeams returns teams with their professionals
func GetAllTeams(c *fiber.Ctx) error {
	query := db.DB.Preload("Professionals").Preload("Leader")
	if companyID := c.Query("company_id"); companyID != "" {
		query = query.Where("company_id = ?", companyID)
	}

	var teams []models.Team
	if err := query.Find(&teams).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to fetch teams", err))
	}
	return c.JSON(teams)
}

// GetTeam returns a team by ID
func GetTeam(c *fiber.Ctx) error {
	id := c.Params("id")
	var team models.Team
	if err := db.DB.Preload("Professionals.User").Preload("Leader").First(&team, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Team not found", err))
	}
	return c.JSON(team)
}

// CreateTeam creates a new team
func CreateTeam(c *fiber.Ctx) error {
	var team models.Team
	if err := c.BodyParser(&team); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}
	if team.Name == "" || team.CompanyID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name and company are required",
		})
	}
	team.IsActive = true
	if err := db.DB.Create(&team).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to create team", err))
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

// UpdateTeam updates a team by ID
func UpdateTeam(c *fiber.Ctx) error {
	id := c.Params("id")
	var team models.Team
	if err := db.DB.First(&team, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Team not found", err))
	}

	var patch models.Team
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}
	if err := db.DB.Model(&team).Updates(patch).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to update team", err))
	}
	return c.JSON(team)
}

// AddProfessionalToTeam assigns a professional to the team
func AddProfessionalToTeam(c *fiber.Ctx) error {
	id := c.Params("id")
	var team models.Team
	if err := db.DB.First(&team, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Team not found", err))
	}

	var input struct {
		ProfessionalID uint `json:"professional_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewError("Failed to parse request body", err))
	}

	var professional models.Professional
	if err := db.DB.First(&professional, input.ProfessionalID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Professional not found", err))
	}
	if professional.CompanyID != team.CompanyID {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Professional belongs to another company",
		})
	}

	if err := db.DB.Model(&professional).Update("team_id", team.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to assign professional", err))
	}
	return c.JSON(fiber.Map{
		"message": "Professional assigned to team",
	})
}

// RemoveProfessionalFromTeam unassigns a professional from the team
func RemoveProfessionalFromTeam(c *fiber.Ctx) error {
	teamID := c.Params("id")
	professionalID := c.Params("professionalId")

	var professional models.Professional
	if err := db.DB.Where("id = ? AND team_id = ?", professionalID, teamID).First(&professional).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewError("Professional not found on this team", err))
	}

	if err := db.DB.Model(&professional).Update("team_id", nil).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewError("Failed to remove professional", err))
	}
	return c.JSON(fiber.Map{
		"message": "Professional removed from team",
	})
}
