package models

import (
	"time"

	"gorm.io/gorm"
)

type CheckStatus string

const (
	CheckPending   CheckStatus = "pending"
	CheckCheckedIn CheckStatus = "checked_in"
	CheckCompleted CheckStatus = "completed"
	CheckCancelled CheckStatus = "cancelled"
)

// CheckRecord tracks a professional's arrival and departure at a job
// site. At most one non-cancelled record exists per appointment.
type CheckRecord struct {
	gorm.Model
	AppointmentID  uint        `json:"appointment_id"`
	Appointment    Appointment `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
	ProfessionalID uint        `json:"professional_id"`
	CustomerID     uint        `json:"customer_id"`
	Status         CheckStatus `json:"status" gorm:"default:'pending'"`
	CheckInTime    *time.Time  `json:"check_in_time,omitempty"`
	CheckOutTime   *time.Time  `json:"check_out_time,omitempty"` // never before CheckInTime
	CheckInLat     float64     `json:"check_in_lat"`
	CheckInLng     float64     `json:"check_in_lng"`
}

// IsActive reports whether the record still tracks a live visit.
func (c *CheckRecord) IsActive() bool {
	return c.Status == CheckPending || c.Status == CheckCheckedIn
}
