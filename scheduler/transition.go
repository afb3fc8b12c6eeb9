package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/sparklean/cleaning-api/models"
)

type EffectKind string

const (
	EffectCreateCheckRecord  EffectKind = "create_check_record"
	EffectCloseCheckRecord   EffectKind = "close_check_record"
	EffectCancelCheckRecord  EffectKind = "cancel_check_record"
	EffectCreateCancellation EffectKind = "create_cancellation"
)

// Effect is a persistence request produced by a transition. The state
// machine performs no I/O itself; callers hand the full effect list to
// the store so everything lands in one batch.
type Effect struct {
	Kind         EffectKind
	CheckRecord  *models.CheckRecord  `json:"check_record,omitempty"`
	Cancellation *models.Cancellation `json:"cancellation,omitempty"`
}

// TransitionContext carries the actor input for a transition.
type TransitionContext struct {
	Now             time.Time
	ProfessionalID  uint
	Latitude        float64
	Longitude       float64
	Reason          string
	Notes           string
	CancelledByID   uint
	CancelledByRole models.ActorRole
	RefundStatus    models.RefundStatus // initial refund state; empty means pending

	// ActiveCheckRecord is the appointment's current non-cancelled
	// check record, if any. The caller loads it; the machine stays pure.
	ActiveCheckRecord *models.CheckRecord
}

// Transition validates a status change and returns the updated
// appointment plus the effects to persist alongside it. The input
// appointment is not mutated; on error it is returned unchanged.
//
//	scheduled   -> in_progress  (check-in; creates a check record)
//	in_progress -> completed    (check-out; closes the check record)
//	scheduled | in_progress -> cancelled
//	            (requires a reason; creates a cancellation and stops
//	             any in-flight check record)
//
// Completed and cancelled are terminal.
func Transition(appt models.Appointment, target models.AppointmentStatus, ctx TransitionContext) (models.Appointment, []Effect, error) {
	if appt.Status.IsTerminal() {
		return appt, nil, fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, appt.Status)
	}

	switch target {
	case models.StatusInProgress:
		if appt.Status != models.StatusScheduled {
			return appt, nil, invalidTransition(appt.Status, target)
		}
		var effects []Effect
		if ctx.ActiveCheckRecord == nil {
			now := ctx.Now
			effects = append(effects, Effect{
				Kind: EffectCreateCheckRecord,
				CheckRecord: &models.CheckRecord{
					AppointmentID:  appt.ID,
					ProfessionalID: ctx.ProfessionalID,
					CustomerID:     appt.CustomerID,
					Status:         models.CheckCheckedIn,
					CheckInTime:    &now,
					CheckInLat:     ctx.Latitude,
					CheckInLng:     ctx.Longitude,
				},
			})
		}
		appt.Status = models.StatusInProgress
		return appt, effects, nil

	case models.StatusCompleted:
		if appt.Status != models.StatusInProgress {
			return appt, nil, invalidTransition(appt.Status, target)
		}
		now := ctx.Now
		var effects []Effect
		if cr := ctx.ActiveCheckRecord; cr != nil {
			closed := *cr
			closed.Status = models.CheckCompleted
			out := now
			if closed.CheckInTime != nil && out.Before(*closed.CheckInTime) {
				out = *closed.CheckInTime // check-out never precedes check-in
			}
			closed.CheckOutTime = &out
			effects = append(effects, Effect{Kind: EffectCloseCheckRecord, CheckRecord: &closed})
		}
		appt.Status = models.StatusCompleted
		appt.CompletedAt = &now
		return appt, effects, nil

	case models.StatusCancelled:
		if strings.TrimSpace(ctx.Reason) == "" {
			return appt, nil, ErrMissingCancellationReason
		}
		now := ctx.Now
		refund := ctx.RefundStatus
		if refund == "" {
			refund = models.RefundPending
		}
		role := ctx.CancelledByRole
		if role == "" {
			role = models.ActorSystem
		}
		effects := []Effect{{
			Kind: EffectCreateCancellation,
			Cancellation: &models.Cancellation{
				AppointmentID:   appt.ID,
				CustomerID:      appt.CustomerID,
				CompanyID:       appt.CompanyID,
				Reason:          ctx.Reason,
				Notes:           ctx.Notes,
				RefundStatus:    refund,
				CancelledByID:   ctx.CancelledByID,
				CancelledByRole: role,
				CancelledAt:     now,
			},
		}}
		if cr := ctx.ActiveCheckRecord; cr != nil {
			stopped := *cr
			stopped.Status = models.CheckCancelled
			effects = append(effects, Effect{Kind: EffectCancelCheckRecord, CheckRecord: &stopped})
		}
		appt.Status = models.StatusCancelled
		appt.CancelledAt = &now
		return appt, effects, nil

	case models.StatusScheduled:
		return appt, nil, invalidTransition(appt.Status, target)

	default:
		return appt, nil, fmt.Errorf("%w: unknown target status %q", ErrInvalidTransition, target)
	}
}

func invalidTransition(from, to models.AppointmentStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
