package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Payment records what the customer paid for an appointment. Whether a
// cancellation starts with a pending refund or none at all depends on
// a paid payment existing.
type Payment struct {
	gorm.Model
	AppointmentID uint          `json:"appointment_id"`
	Appointment   Appointment   `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
	CustomerID    uint          `json:"customer_id"`
	CompanyID     uint          `json:"company_id"`
	Amount        float64       `json:"amount"`
	Method        string        `json:"method"` // e.g. "card", "cash", "transfer"
	Status        PaymentStatus `json:"status" gorm:"default:'pending'"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}
