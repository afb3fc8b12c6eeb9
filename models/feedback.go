package models

import (
	"gorm.io/gorm"
)

// Feedback is a customer's rating of a completed job.
type Feedback struct {
	gorm.Model
	Rating         float64     `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment        string      `json:"comment"`
	CustomerID     uint        `json:"customer_id"`
	Customer       Customer    `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CompanyID      uint        `json:"company_id"`
	AppointmentID  uint        `json:"appointment_id"`
	Appointment    Appointment `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
	ProfessionalID *uint       `json:"professional_id,omitempty"`
	IsAnonymous    bool        `json:"is_anonymous" gorm:"default:false"`
}

// BeforeCreate clamps the rating into the 1.0-5.0 range.
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.Rating < 1.0 {
		f.Rating = 1.0
	} else if f.Rating > 5.0 {
		f.Rating = 5.0
	}
	return nil
}
