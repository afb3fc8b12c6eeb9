package models

import (
	"time"

	"gorm.io/gorm"
)

// TrackingPoint is a GPS position reported by a professional in the
// field, optionally tied to the appointment being worked.
type TrackingPoint struct {
	gorm.Model
	ProfessionalID uint      `json:"professional_id"`
	AppointmentID  *uint     `json:"appointment_id,omitempty"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	RecordedAt     time.Time `json:"recorded_at"`
}
