package scheduler

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sparklean/cleaning-api/models"
)

// fakeStore is an in-memory Store for orchestrator tests.
type fakeStore struct {
	appointments []models.Appointment
	recurrences  map[uint]models.Recurrence
	nextID       uint

	failCreateFor map[uint]error // recurrence ID -> error on CreateAppointment
	failFind      error
	failSave      error

	saveTransitionCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		recurrences:   make(map[uint]models.Recurrence),
		failCreateFor: make(map[uint]error),
	}
}

func (s *fakeStore) CreateAppointment(appt models.Appointment) (models.Appointment, error) {
	if appt.RecurrenceID != nil {
		if err := s.failCreateFor[*appt.RecurrenceID]; err != nil {
			return models.Appointment{}, err
		}
	}
	s.nextID++
	appt.ID = s.nextID
	s.appointments = append(s.appointments, appt)
	return appt, nil
}

func (s *fakeStore) UpdateAppointment(appt models.Appointment) (models.Appointment, error) {
	return appt, nil
}

func (s *fakeStore) CreateCheckRecord(cr models.CheckRecord) (models.CheckRecord, error) {
	return cr, nil
}

func (s *fakeStore) UpdateCheckRecord(cr models.CheckRecord) (models.CheckRecord, error) {
	return cr, nil
}

func (s *fakeStore) CreateCancellation(c models.Cancellation) (models.Cancellation, error) {
	return c, nil
}

func (s *fakeStore) UpdateCancellation(c models.Cancellation) (models.Cancellation, error) {
	return c, nil
}

func (s *fakeStore) UpdateRecurrence(rec models.Recurrence) (models.Recurrence, error) {
	s.recurrences[rec.ID] = rec
	return rec, nil
}

func (s *fakeStore) FindAppointmentsByRecurrenceAndDate(recurrenceID uint, d time.Time) ([]models.Appointment, error) {
	if s.failFind != nil {
		return nil, s.failFind
	}
	var out []models.Appointment
	for _, appt := range s.appointments {
		if appt.RecurrenceID == nil || *appt.RecurrenceID != recurrenceID {
			continue
		}
		y1, m1, d1 := appt.StartTime.Date()
		y2, m2, d2 := d.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (s *fakeStore) SaveTransition(appt models.Appointment, effects []Effect) (models.Appointment, error) {
	if s.failSave != nil {
		return models.Appointment{}, s.failSave
	}
	s.saveTransitionCalls++
	return appt, nil
}

func weeklyRecurrence(id uint, next time.Time) models.Recurrence {
	rec := models.Recurrence{
		Title:           "Weekly apartment cleaning",
		CustomerID:      5,
		CompanyID:       2,
		TeamID:          4,
		Frequency:       models.FrequencyWeekly,
		Day:             int(next.Weekday()),
		TimeOfDay:       "09:00",
		StartDate:       next.AddDate(0, 0, -28),
		DurationMinutes: 90,
		Status:          models.RecurrenceActive,
		Type:            models.RecurrenceTypeRegular,
		NextExecution:   &next,
	}
	rec.ID = id
	return rec
}

func TestRunDueMaterializesDueRecurrence(t *testing.T) {
	store := newFakeStore()
	o := NewOrchestrator(store)
	due := time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC)
	rec := weeklyRecurrence(1, due)
	now := due.Add(5 * time.Minute)

	report := o.RunDue([]models.Recurrence{rec}, now)

	if len(report.Failures) != 0 {
		t.Fatalf("unexpected failures: %+v", report.Failures)
	}
	if len(report.Created) != 1 {
		t.Fatalf("created = %d, want 1", len(report.Created))
	}
	appt := report.Created[0]
	if appt.RecurrenceID == nil || *appt.RecurrenceID != rec.ID {
		t.Fatalf("appointment not linked to recurrence: %+v", appt)
	}
	if !appt.StartTime.Equal(due) {
		t.Fatalf("start = %s, want %s", appt.StartTime, due)
	}
	if !appt.EndTime.Equal(due.Add(90 * time.Minute)) {
		t.Fatalf("end = %s, want start+90m", appt.EndTime)
	}
	if appt.Status != models.StatusScheduled || appt.TeamID != rec.TeamID || appt.CustomerID != rec.CustomerID {
		t.Fatalf("appointment fields wrong: %+v", appt)
	}

	updated, ok := store.recurrences[rec.ID]
	if !ok || updated.NextExecution == nil {
		t.Fatal("recurrence next execution not persisted")
	}
	want := time.Date(2024, time.May, 13, 9, 0, 0, 0, time.UTC)
	if !updated.NextExecution.Equal(want) {
		t.Fatalf("next execution = %s, want %s", updated.NextExecution, want)
	}
}

func TestRunDueIgnoresNotDue(t *testing.T) {
	store := newFakeStore()
	o := NewOrchestrator(store)
	now := time.Date(2024, time.May, 6, 8, 0, 0, 0, time.UTC)

	future := weeklyRecurrence(1, now.Add(24*time.Hour))
	inactive := weeklyRecurrence(2, now.Add(-time.Hour))
	inactive.Status = models.RecurrenceInactive
	unset := weeklyRecurrence(3, now)
	unset.NextExecution = nil

	report := o.RunDue([]models.Recurrence{future, inactive, unset}, now)

	if len(report.Created)+len(report.Skipped)+len(report.Failures) != 0 {
		t.Fatalf("nothing should have been processed: %+v", report)
	}
	if len(store.appointments) != 0 {
		t.Fatalf("appointments created: %d", len(store.appointments))
	}
}

func TestRunDueIsIdempotent(t *testing.T) {
	store := newFakeStore()
	o := NewOrchestrator(store)
	due := time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC)
	rec := weeklyRecurrence(1, due)
	now := due.Add(time.Minute)

	// Same stale recurrence list both times, clock not advanced.
	first := o.RunDue([]models.Recurrence{rec}, now)
	second := o.RunDue([]models.Recurrence{rec}, now)

	if len(first.Created) != 1 {
		t.Fatalf("first run created = %d, want 1", len(first.Created))
	}
	if len(second.Created) != 0 || len(second.Skipped) != 1 {
		t.Fatalf("second run should skip, got %+v", second)
	}
	if len(store.appointments) != 1 {
		t.Fatalf("appointments = %d, want exactly 1", len(store.appointments))
	}
	// The skipped run still advances the recurrence so it cannot wedge.
	if store.recurrences[rec.ID].NextExecution.Equal(due) {
		t.Fatal("next execution not advanced on skipped run")
	}
}

func TestRunDueIsolatesFailures(t *testing.T) {
	store := newFakeStore()
	store.failCreateFor[1] = fmt.Errorf("connection reset")
	o := NewOrchestrator(store)
	due := time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC)
	broken := weeklyRecurrence(1, due)
	healthy := weeklyRecurrence(2, due)
	now := due.Add(time.Minute)

	report := o.RunDue([]models.Recurrence{broken, healthy}, now)

	if len(report.Failures) != 1 || report.Failures[0].RecurrenceID != broken.ID {
		t.Fatalf("failures = %+v, want one for recurrence 1", report.Failures)
	}
	var pe *PersistenceError
	if !errors.As(report.Failures[0].Err, &pe) {
		t.Fatalf("failure not wrapped as PersistenceError: %v", report.Failures[0].Err)
	}
	if len(report.Created) != 1 || *report.Created[0].RecurrenceID != healthy.ID {
		t.Fatalf("healthy recurrence not materialized: %+v", report.Created)
	}
	// The failed recurrence must not advance past its unmaterialized date.
	if _, ok := store.recurrences[broken.ID]; ok {
		t.Fatal("failed recurrence advanced despite create failure")
	}
}

func TestApplyTransitionPersistsBatch(t *testing.T) {
	store := newFakeStore()
	o := NewOrchestrator(store)
	appt := models.Appointment{CustomerID: 5, CompanyID: 2, Status: models.StatusScheduled}
	appt.ID = 1

	saved, effects, err := o.ApplyTransition(appt, models.StatusInProgress, TransitionContext{
		Now:            time.Now(),
		ProfessionalID: 8,
	})
	if err != nil {
		t.Fatal(err)
	}
	if saved.Status != models.StatusInProgress || len(effects) != 1 {
		t.Fatalf("saved=%+v effects=%+v", saved, effects)
	}
	if store.saveTransitionCalls != 1 {
		t.Fatalf("SaveTransition calls = %d, want 1", store.saveTransitionCalls)
	}
}

func TestApplyTransitionStoreFailureLeavesAppointment(t *testing.T) {
	store := newFakeStore()
	store.failSave = fmt.Errorf("timeout")
	o := NewOrchestrator(store)
	appt := models.Appointment{Status: models.StatusScheduled}
	appt.ID = 1

	got, _, err := o.ApplyTransition(appt, models.StatusInProgress, TransitionContext{Now: time.Now()})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("want PersistenceError, got %v", err)
	}
	if got.Status != models.StatusScheduled {
		t.Fatalf("appointment changed despite failed batch: %+v", got)
	}
}

func TestApplyTransitionValidationFailureSkipsStore(t *testing.T) {
	store := newFakeStore()
	o := NewOrchestrator(store)
	appt := models.Appointment{Status: models.StatusCompleted}
	appt.ID = 1

	_, _, err := o.ApplyTransition(appt, models.StatusCancelled, TransitionContext{Now: time.Now(), Reason: "x"})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	if store.saveTransitionCalls != 0 {
		t.Fatal("store must not be touched on validation failure")
	}
}
