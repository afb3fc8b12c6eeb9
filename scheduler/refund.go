package scheduler

import (
	"fmt"

	"github.com/sparklean/cleaning-api/models"
)

// SetRefundStatus records the refund decision for a cancellation.
// Decisions are one-way: once a cancellation leaves pending it can
// never change again, and pending itself is not a valid target.
func SetRefundStatus(c models.Cancellation, status models.RefundStatus) (models.Cancellation, error) {
	if c.RefundStatus.IsTerminal() {
		return c, fmt.Errorf("%w: already %s", ErrInvalidRefundTransition, c.RefundStatus)
	}
	switch status {
	case models.RefundProcessed, models.RefundRejected, models.RefundNotApplicable:
		c.RefundStatus = status
		return c, nil
	default:
		return c, fmt.Errorf("%w: %q is not a valid decision", ErrInvalidRefundTransition, status)
	}
}
