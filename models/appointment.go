package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

type ServiceType string

const (
	ServiceResidential ServiceType = "residential"
	ServiceCommercial  ServiceType = "commercial"
	ServiceIndustrial  ServiceType = "industrial"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Appointment is a single scheduled cleaning job, optionally spawned
// from a recurrence.
type Appointment struct {
	gorm.Model
	Title          string            `json:"title"`
	CustomerID     uint              `json:"customer_id"`
	Customer       Customer          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CompanyID      uint              `json:"company_id"`
	Company        Company           `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	TeamID         uint              `json:"team_id"`
	Team           Team              `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	ProfessionalID *uint             `json:"professional_id,omitempty"`
	Professional   *Professional     `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID"`
	RecurrenceID   *uint             `json:"recurrence_id,omitempty"` // weak reference; past appointments outlive their recurrence
	StartTime      time.Time         `json:"start_time"`
	EndTime        time.Time         `json:"end_time"`
	Status         AppointmentStatus `json:"status" gorm:"default:'scheduled'"`
	Type           ServiceType       `json:"type" gorm:"default:'residential'"`
	CleaningType   RecurrenceType    `json:"cleaning_type" gorm:"default:'regular'"`
	Priority       Priority          `json:"priority" gorm:"default:'medium'"`
	Address        string            `json:"address"`
	Notes          string            `json:"notes"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
	CancelledAt    *time.Time        `json:"cancelled_at,omitempty"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return nil
}

// IsTerminal reports whether the appointment can no longer change status.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
