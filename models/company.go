package models

import (
	"gorm.io/gorm"
)

// Company is a tenant: a cleaning business managing its own customers,
// teams and service contracts.
type Company struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	TaxNumber   string `json:"tax_number"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}
