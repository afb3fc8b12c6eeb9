package scheduler

import (
	"time"

	"github.com/sparklean/cleaning-api/models"
)

// Orchestrator ties the frequency calculator and the state machine to
// the store. It holds no state between calls.
type Orchestrator struct {
	Store Store
}

func NewOrchestrator(store Store) *Orchestrator {
	return &Orchestrator{Store: store}
}

// MaterializationFailure records which recurrence failed and why.
type MaterializationFailure struct {
	RecurrenceID uint   `json:"recurrence_id"`
	Error        string `json:"error"`
	Err          error  `json:"-"`
}

// Report summarizes one materialization run.
type Report struct {
	RanAt    time.Time                `json:"ran_at"`
	Created  []models.Appointment     `json:"created"`
	Skipped  []uint                   `json:"skipped"` // recurrences whose due date was already materialized
	Failures []MaterializationFailure `json:"failures"`
}

// RunDue materializes an appointment for every active recurrence whose
// next execution is due at now, then advances each recurrence's next
// execution. One recurrence failing never blocks the others; failures
// are collected in the report.
//
// The run is idempotent per (recurrence, due date): a date that already
// has an appointment is skipped, but the recurrence still advances so
// a stale next execution cannot wedge the contract.
func (o *Orchestrator) RunDue(recurrences []models.Recurrence, now time.Time) Report {
	report := Report{RanAt: now}
	for _, rec := range recurrences {
		if !rec.IsDue(now) {
			continue
		}
		created, err := o.materialize(rec)
		if err != nil {
			report.Failures = append(report.Failures, MaterializationFailure{
				RecurrenceID: rec.ID,
				Error:        err.Error(),
				Err:          err,
			})
			continue
		}
		if created != nil {
			report.Created = append(report.Created, *created)
		} else {
			report.Skipped = append(report.Skipped, rec.ID)
		}
	}
	return report
}

func (o *Orchestrator) materialize(rec models.Recurrence) (*models.Appointment, error) {
	due := *rec.NextExecution

	existing, err := o.Store.FindAppointmentsByRecurrenceAndDate(rec.ID, due)
	if err != nil {
		return nil, &PersistenceError{Op: "find appointments", Err: err}
	}

	var created *models.Appointment
	if len(existing) == 0 {
		appt := AppointmentFromRecurrence(rec, due)
		saved, err := o.Store.CreateAppointment(appt)
		if err != nil {
			return nil, &PersistenceError{Op: "create appointment", Err: err}
		}
		created = &saved
	}

	next, err := ComputeNextExecution(rec.Frequency, rec.Day, rec.TimeOfDay, due, rec.StartDate)
	if err != nil {
		return nil, err
	}
	rec.NextExecution = &next
	if _, err := o.Store.UpdateRecurrence(rec); err != nil {
		return nil, &PersistenceError{Op: "update recurrence", Err: err}
	}
	return created, nil
}

// AppointmentFromRecurrence builds the concrete appointment a due
// recurrence materializes into.
func AppointmentFromRecurrence(rec models.Recurrence, due time.Time) models.Appointment {
	minutes := rec.DurationMinutes
	if minutes <= 0 {
		minutes = 120
	}
	recID := rec.ID
	return models.Appointment{
		Title:        rec.Title,
		CustomerID:   rec.CustomerID,
		CompanyID:    rec.CompanyID,
		TeamID:       rec.TeamID,
		RecurrenceID: &recID,
		StartTime:    due,
		EndTime:      due.Add(time.Duration(minutes) * time.Minute),
		Status:       models.StatusScheduled,
		CleaningType: rec.Type,
		Priority:     models.PriorityMedium,
		Address:      rec.Customer.Address,
	}
}

// ApplyTransition runs the state machine and persists the resulting
// effect batch atomically. On any error the stored appointment is
// untouched and returned as-is.
func (o *Orchestrator) ApplyTransition(appt models.Appointment, target models.AppointmentStatus, ctx TransitionContext) (models.Appointment, []Effect, error) {
	updated, effects, err := Transition(appt, target, ctx)
	if err != nil {
		return appt, nil, err
	}
	saved, err := o.Store.SaveTransition(updated, effects)
	if err != nil {
		return appt, nil, &PersistenceError{Op: "save transition", Err: err}
	}
	return saved, effects, nil
}
