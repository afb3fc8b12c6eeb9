package controllers

import (
	"testing"

	"github.com/sparklean/cleaning-api/models"
)

func TestApplyRecurrencePatch(t *testing.T) {
	base := func() models.Recurrence {
		return models.Recurrence{
			Title:           "Weekly office clean",
			Frequency:       models.FrequencyWeekly,
			Day:             3,
			TimeOfDay:       "09:00",
			TeamID:          2,
			DurationMinutes: 120,
			Type:            models.RecurrenceTypeRegular,
			Status:          models.RecurrenceActive,
		}
	}
	sunday := 0
	friday := 5

	tests := []struct {
		name    string
		patch   recurrencePatch
		wantDay int
	}{
		{
			name:    "empty patch leaves day alone",
			patch:   recurrencePatch{},
			wantDay: 3,
		},
		{
			name:    "move to friday",
			patch:   recurrencePatch{Day: &friday},
			wantDay: 5,
		},
		{
			name:    "move to sunday",
			patch:   recurrencePatch{Day: &sunday},
			wantDay: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := base()
			applyRecurrencePatch(&rec, tt.patch)
			if rec.Day != tt.wantDay {
				t.Errorf("Day = %d, want %d", rec.Day, tt.wantDay)
			}
		})
	}

	t.Run("other fields still patch", func(t *testing.T) {
		rec := base()
		applyRecurrencePatch(&rec, recurrencePatch{
			Frequency: models.FrequencyMonthly,
			TimeOfDay: "14:30",
			Status:    models.RecurrenceInactive,
		})
		if rec.Frequency != models.FrequencyMonthly {
			t.Errorf("Frequency = %s, want monthly", rec.Frequency)
		}
		if rec.TimeOfDay != "14:30" {
			t.Errorf("TimeOfDay = %s, want 14:30", rec.TimeOfDay)
		}
		if rec.Status != models.RecurrenceInactive {
			t.Errorf("Status = %s, want inactive", rec.Status)
		}
		if rec.Title != "Weekly office clean" {
			t.Errorf("Title changed unexpectedly: %s", rec.Title)
		}
	})
}
