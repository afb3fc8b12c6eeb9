package scheduler

import (
	"fmt"
	"time"

	"github.com/sparklean/cleaning-api/models"
	"github.com/sparklean/cleaning-api/utils"
)

// ValidateDay checks that the day value makes sense for the frequency:
// a weekday (0-6) for weekly and biweekly recurrences, a day of month
// (1-31) for monthly ones.
func ValidateDay(frequency models.Frequency, day int) error {
	switch frequency {
	case models.FrequencyWeekly, models.FrequencyBiWeekly:
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: weekday %d, want 0-6", ErrInvalidRecurrenceDay, day)
		}
	case models.FrequencyMonthly:
		if day < 1 || day > 31 {
			return fmt.Errorf("%w: day of month %d, want 1-31", ErrInvalidRecurrenceDay, day)
		}
	default:
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidRecurrenceDay, frequency)
	}
	return nil
}

// ComputeNextExecution returns the next occurrence of a recurrence
// strictly after fromDate, combined with the contract's time of day.
// Biweekly parity is anchored to the first matching weekday on or
// after startDate. The function is pure: same inputs, same output.
func ComputeNextExecution(frequency models.Frequency, day int, timeOfDay string, fromDate, startDate time.Time) (time.Time, error) {
	if err := ValidateDay(frequency, day); err != nil {
		return time.Time{}, err
	}
	hour, minute, err := utils.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}

	// Results must never land before the contract starts.
	if dateOnly(fromDate).Before(dateOnly(startDate).AddDate(0, 0, -1)) {
		fromDate = startDate.AddDate(0, 0, -1)
	}

	var next time.Time
	switch frequency {
	case models.FrequencyWeekly:
		next = nextWeekday(fromDate, time.Weekday(day))
	case models.FrequencyBiWeekly:
		next = nextWeekday(fromDate, time.Weekday(day))
		anchor := nextWeekday(startDate.AddDate(0, 0, -1), time.Weekday(day))
		if (daysBetween(anchor, next)/7)%2 != 0 {
			next = next.AddDate(0, 0, 7)
		}
	case models.FrequencyMonthly:
		next = nextMonthlyDay(fromDate, day)
	}

	return time.Date(next.Year(), next.Month(), next.Day(), hour, minute, 0, 0, fromDate.Location()), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nextWeekday returns the first date strictly after t falling on wd.
func nextWeekday(t time.Time, wd time.Weekday) time.Time {
	d := dateOnly(t).AddDate(0, 0, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// daysBetween counts civil days from a to b, ignoring time zones so
// DST shifts cannot skew week arithmetic.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// nextMonthlyDay returns the first date strictly after t whose day of
// month is day, clamped to the last day of months that are too short
// (day 31 in February lands on the 28th or 29th).
func nextMonthlyDay(t time.Time, day int) time.Time {
	c := clampedDate(t.Year(), t.Month(), day, t.Location())
	if !c.After(dateOnly(t)) {
		firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
		c = clampedDate(firstOfNext.Year(), firstOfNext.Month(), day, t.Location())
	}
	return c
}

func clampedDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	// day 0 of the following month is the last day of this one
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
