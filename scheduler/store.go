package scheduler

import (
	"time"

	"github.com/sparklean/cleaning-api/models"
)

// Store is the persistence collaborator for the scheduler. Every call
// may fail with a network or validation error; the engine surfaces
// those as PersistenceError values and never retries.
type Store interface {
	CreateAppointment(appt models.Appointment) (models.Appointment, error)
	UpdateAppointment(appt models.Appointment) (models.Appointment, error)
	CreateCheckRecord(cr models.CheckRecord) (models.CheckRecord, error)
	UpdateCheckRecord(cr models.CheckRecord) (models.CheckRecord, error)
	CreateCancellation(c models.Cancellation) (models.Cancellation, error)
	UpdateCancellation(c models.Cancellation) (models.Cancellation, error)
	UpdateRecurrence(rec models.Recurrence) (models.Recurrence, error)

	// FindAppointmentsByRecurrenceAndDate returns appointments already
	// materialized from the recurrence on the given calendar date,
	// regardless of status. Used for idempotency checks.
	FindAppointmentsByRecurrenceAndDate(recurrenceID uint, date time.Time) ([]models.Appointment, error)

	// SaveTransition persists an updated appointment together with the
	// effects of its transition as one atomic batch. A partial failure
	// must leave the appointment in its previous state.
	SaveTransition(appt models.Appointment, effects []Effect) (models.Appointment, error)
}
