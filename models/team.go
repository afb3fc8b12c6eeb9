package models

import (
	"gorm.io/gorm"
)

// Team is a crew of professionals that a company dispatches to jobs.
type Team struct {
	gorm.Model
	Name          string         `json:"name"`
	CompanyID     uint           `json:"company_id"`
	Company       Company        `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	LeaderID      *uint          `json:"leader_id,omitempty"`
	Leader        *Professional  `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
	Professionals []Professional `json:"professionals,omitempty" gorm:"foreignKey:TeamID"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
}

// Professional is a field worker profile linked to a user account.
type Professional struct {
	gorm.Model
	UserID    uint    `json:"user_id"`
	User      User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CompanyID uint    `json:"company_id"`
	Company   Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	TeamID    *uint   `json:"team_id,omitempty"`
	Phone     string  `json:"phone"`
	Document  string  `json:"document"` // national ID / work permit
	IsActive  bool    `json:"is_active" gorm:"default:true"`
}
