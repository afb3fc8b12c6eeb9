package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/sparklean/cleaning-api/models"
)

func scheduledAppointment() models.Appointment {
	appt := models.Appointment{
		Title:      "Weekly office cleaning",
		CustomerID: 7,
		CompanyID:  3,
		TeamID:     2,
		StartTime:  time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, time.May, 6, 11, 0, 0, 0, time.UTC),
		Status:     models.StatusScheduled,
	}
	appt.ID = 42
	return appt
}

func TestTransitionCheckIn(t *testing.T) {
	appt := scheduledAppointment()
	now := time.Date(2024, time.May, 6, 9, 2, 0, 0, time.UTC)

	updated, effects, err := Transition(appt, models.StatusInProgress, TransitionContext{
		Now:            now,
		ProfessionalID: 11,
		Latitude:       -23.55,
		Longitude:      -46.63,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.StatusInProgress {
		t.Fatalf("status = %s, want in_progress", updated.Status)
	}
	if len(effects) != 1 || effects[0].Kind != EffectCreateCheckRecord {
		t.Fatalf("effects = %+v, want one create_check_record", effects)
	}
	cr := effects[0].CheckRecord
	if cr.AppointmentID != appt.ID || cr.ProfessionalID != 11 || cr.CustomerID != appt.CustomerID {
		t.Fatalf("check record wiring wrong: %+v", cr)
	}
	if cr.Status != models.CheckCheckedIn || cr.CheckInTime == nil || !cr.CheckInTime.Equal(now) {
		t.Fatalf("check record not checked in at now: %+v", cr)
	}
	if cr.CheckOutTime != nil {
		t.Fatal("check-out time must be nil on check-in")
	}
	// input untouched
	if appt.Status != models.StatusScheduled {
		t.Fatal("input appointment mutated")
	}
}

func TestTransitionCheckInWithExistingRecord(t *testing.T) {
	appt := scheduledAppointment()
	existing := &models.CheckRecord{AppointmentID: appt.ID, Status: models.CheckPending}

	_, effects, err := Transition(appt, models.StatusInProgress, TransitionContext{
		Now:               time.Now(),
		ActiveCheckRecord: existing,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(effects) != 0 {
		t.Fatalf("no new check record expected when one is active, got %+v", effects)
	}
}

func TestTransitionCheckOut(t *testing.T) {
	appt := scheduledAppointment()
	appt.Status = models.StatusInProgress
	checkIn := time.Date(2024, time.May, 6, 9, 2, 0, 0, time.UTC)
	now := checkIn.Add(2 * time.Hour)
	active := &models.CheckRecord{AppointmentID: appt.ID, Status: models.CheckCheckedIn, CheckInTime: &checkIn}

	updated, effects, err := Transition(appt, models.StatusCompleted, TransitionContext{
		Now:               now,
		ActiveCheckRecord: active,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.StatusCompleted || updated.CompletedAt == nil {
		t.Fatalf("appointment not completed: %+v", updated)
	}
	if len(effects) != 1 || effects[0].Kind != EffectCloseCheckRecord {
		t.Fatalf("effects = %+v, want one close_check_record", effects)
	}
	cr := effects[0].CheckRecord
	if cr.Status != models.CheckCompleted || cr.CheckOutTime == nil || !cr.CheckOutTime.Equal(now) {
		t.Fatalf("check record not closed at now: %+v", cr)
	}
	if cr.CheckOutTime.Before(*cr.CheckInTime) {
		t.Fatal("check-out before check-in")
	}
}

func TestTransitionCancelWithoutReason(t *testing.T) {
	appt := scheduledAppointment()
	_, effects, err := Transition(appt, models.StatusCancelled, TransitionContext{Now: time.Now()})
	if !errors.Is(err, ErrMissingCancellationReason) {
		t.Fatalf("want ErrMissingCancellationReason, got %v", err)
	}
	if effects != nil {
		t.Fatal("no effects expected on failure")
	}

	_, _, err = Transition(appt, models.StatusCancelled, TransitionContext{Now: time.Now(), Reason: "   "})
	if !errors.Is(err, ErrMissingCancellationReason) {
		t.Fatalf("blank reason: want ErrMissingCancellationReason, got %v", err)
	}
}

func TestTransitionCancelScheduled(t *testing.T) {
	appt := scheduledAppointment()
	now := time.Date(2024, time.May, 5, 18, 0, 0, 0, time.UTC)

	updated, effects, err := Transition(appt, models.StatusCancelled, TransitionContext{
		Now:             now,
		Reason:          "Customer requested",
		CancelledByID:   9,
		CancelledByRole: models.ActorCompany,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.StatusCancelled || updated.CancelledAt == nil {
		t.Fatalf("appointment not cancelled: %+v", updated)
	}
	if len(effects) != 1 || effects[0].Kind != EffectCreateCancellation {
		t.Fatalf("effects = %+v, want exactly one create_cancellation", effects)
	}
	c := effects[0].Cancellation
	if c.RefundStatus != models.RefundPending {
		t.Fatalf("refund status = %s, want pending", c.RefundStatus)
	}
	if c.AppointmentID != appt.ID || c.CompanyID != appt.CompanyID || c.CustomerID != appt.CustomerID {
		t.Fatalf("cancellation wiring wrong: %+v", c)
	}
	if c.CancelledByRole != models.ActorCompany || !c.CancelledAt.Equal(now) {
		t.Fatalf("cancellation actor/time wrong: %+v", c)
	}
}

func TestTransitionCancelInProgressStopsCheckRecord(t *testing.T) {
	appt := scheduledAppointment()
	appt.Status = models.StatusInProgress
	checkIn := time.Now().Add(-time.Hour)
	active := &models.CheckRecord{AppointmentID: appt.ID, Status: models.CheckCheckedIn, CheckInTime: &checkIn}

	updated, effects, err := Transition(appt, models.StatusCancelled, TransitionContext{
		Now:               time.Now(),
		Reason:            "Weather Conditions",
		CancelledByRole:   models.ActorCompany,
		ActiveCheckRecord: active,
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.StatusCancelled {
		t.Fatalf("status = %s", updated.Status)
	}
	if len(effects) != 2 {
		t.Fatalf("want cancellation + check record stop, got %+v", effects)
	}
	if effects[0].Kind != EffectCreateCancellation || effects[0].Cancellation.RefundStatus != models.RefundPending {
		t.Fatalf("first effect wrong: %+v", effects[0])
	}
	if effects[1].Kind != EffectCancelCheckRecord || effects[1].CheckRecord.Status != models.CheckCancelled {
		t.Fatalf("second effect wrong: %+v", effects[1])
	}
}

func TestTransitionCancelNotApplicableRefund(t *testing.T) {
	appt := scheduledAppointment()
	_, effects, err := Transition(appt, models.StatusCancelled, TransitionContext{
		Now:          time.Now(),
		Reason:       "No payment collected",
		RefundStatus: models.RefundNotApplicable,
	})
	if err != nil {
		t.Fatal(err)
	}
	if effects[0].Cancellation.RefundStatus != models.RefundNotApplicable {
		t.Fatalf("refund status = %s, want not_applicable", effects[0].Cancellation.RefundStatus)
	}
}

func TestTransitionTerminalStatesRejectEverything(t *testing.T) {
	targets := []models.AppointmentStatus{
		models.StatusScheduled, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled,
	}
	for _, terminal := range []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled} {
		for _, target := range targets {
			appt := scheduledAppointment()
			appt.Status = terminal
			_, _, err := Transition(appt, target, TransitionContext{Now: time.Now(), Reason: "x"})
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s -> %s: want ErrInvalidTransition, got %v", terminal, target, err)
			}
		}
	}
}

func TestTransitionInvalidForwardJumps(t *testing.T) {
	tests := []struct {
		from, to models.AppointmentStatus
	}{
		{models.StatusScheduled, models.StatusCompleted}, // must pass through in_progress
		{models.StatusInProgress, models.StatusInProgress},
		{models.StatusInProgress, models.StatusScheduled},
		{models.StatusScheduled, models.StatusScheduled},
	}
	for _, tt := range tests {
		appt := scheduledAppointment()
		appt.Status = tt.from
		_, _, err := Transition(appt, tt.to, TransitionContext{Now: time.Now()})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s -> %s: want ErrInvalidTransition, got %v", tt.from, tt.to, err)
		}
	}
}
