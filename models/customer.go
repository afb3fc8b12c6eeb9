package models

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	ZipCode   string  `json:"zip_code"`
	Notes     string  `json:"notes"`
	CompanyID uint    `json:"company_id"`
	Company   Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	IsActive  bool    `json:"is_active" gorm:"default:true"`
}
