package models

import (
	"time"

	"gorm.io/gorm"
)

type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

type RecurrenceStatus string

const (
	RecurrenceInactive RecurrenceStatus = "inactive"
	RecurrenceActive   RecurrenceStatus = "active"
)

type RecurrenceType string

const (
	RecurrenceTypeRegular     RecurrenceType = "regular"
	RecurrenceTypeDeep        RecurrenceType = "deep"
	RecurrenceTypeSpecialized RecurrenceType = "specialized"
)

// Recurrence is a recurring service contract. It periodically
// materializes into concrete appointments; NextExecution is the date
// the next one is due.
type Recurrence struct {
	gorm.Model
	Title      string    `json:"title"`
	CustomerID uint      `json:"customer_id"`
	Customer   Customer  `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CompanyID  uint      `json:"company_id"`
	Company    Company   `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	TeamID     uint      `json:"team_id"`
	Team       Team      `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Frequency  Frequency `json:"frequency"`
	// Day is a weekday (0=Sunday..6=Saturday) for weekly/biweekly
	// recurrences and a day-of-month (1-31) for monthly ones.
	Day             int              `json:"day"`
	TimeOfDay       string           `json:"time_of_day"` // "HH:MM" in 24h
	StartDate       time.Time        `json:"start_date"`
	DurationMinutes int              `json:"duration_minutes" gorm:"default:120"`
	Status          RecurrenceStatus `json:"status" gorm:"default:'active'"`
	Type            RecurrenceType   `json:"type" gorm:"default:'regular'"`
	NextExecution   *time.Time       `json:"next_execution,omitempty"`
}

// IsDue reports whether the recurrence should materialize an
// appointment at the given instant.
func (r *Recurrence) IsDue(now time.Time) bool {
	return r.Status == RecurrenceActive && r.NextExecution != nil && !r.NextExecution.After(now)
}
