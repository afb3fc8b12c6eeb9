package models

import (
	"time"

	"gorm.io/gorm"
)

type RefundStatus string

const (
	RefundPending       RefundStatus = "pending"
	RefundProcessed     RefundStatus = "processed"
	RefundRejected      RefundStatus = "rejected"
	RefundNotApplicable RefundStatus = "not_applicable" // no payment was collected
)

// IsTerminal reports whether the refund decision is final. Processed
// and rejected refunds mirror irreversible payment operations.
func (s RefundStatus) IsTerminal() bool {
	return s == RefundProcessed || s == RefundRejected || s == RefundNotApplicable
}

type ActorRole string

const (
	ActorCompany  ActorRole = "company"
	ActorAdmin    ActorRole = "admin"
	ActorCustomer ActorRole = "customer"
	ActorSystem   ActorRole = "system"
)

// Cancellation records why an appointment was cancelled and the refund
// outcome. It is created in the same transaction as the appointment's
// transition to cancelled.
type Cancellation struct {
	gorm.Model
	AppointmentID   uint         `json:"appointment_id"`
	Appointment     Appointment  `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
	CustomerID      uint         `json:"customer_id"`
	CompanyID       uint         `json:"company_id"`
	Reason          string       `json:"reason"`
	Notes           string       `json:"notes"`
	RefundStatus    RefundStatus `json:"refund_status" gorm:"default:'pending'"`
	CancelledByID   uint         `json:"cancelled_by_id"`
	CancelledByRole ActorRole    `json:"cancelled_by_role"`
	CancelledAt     time.Time    `json:"cancelled_at"`
}
