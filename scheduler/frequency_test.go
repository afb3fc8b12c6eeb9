package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/sparklean/cleaning-api/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateDay(t *testing.T) {
	tests := []struct {
		name      string
		frequency models.Frequency
		day       int
		wantErr   bool
	}{
		{"weekly sunday", models.FrequencyWeekly, 0, false},
		{"weekly saturday", models.FrequencyWeekly, 6, false},
		{"weekly out of range", models.FrequencyWeekly, 7, true},
		{"weekly negative", models.FrequencyWeekly, -1, true},
		{"biweekly monday", models.FrequencyBiWeekly, 1, false},
		{"biweekly out of range", models.FrequencyBiWeekly, 9, true},
		{"monthly first", models.FrequencyMonthly, 1, false},
		{"monthly 31st", models.FrequencyMonthly, 31, false},
		{"monthly zero", models.FrequencyMonthly, 0, true},
		{"monthly 32nd", models.FrequencyMonthly, 32, true},
		{"unknown frequency", models.Frequency("daily"), 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDay(tt.frequency, tt.day)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRecurrenceDay) {
					t.Fatalf("want ErrInvalidRecurrenceDay, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestComputeNextExecutionWeekly(t *testing.T) {
	start := date(2024, time.January, 1)
	// Every weekday, starting from a spread of from-dates: the result
	// must fall on the requested weekday and be strictly after from.
	for day := 0; day <= 6; day++ {
		for offset := 0; offset < 21; offset++ {
			from := date(2024, time.March, 1).AddDate(0, 0, offset)
			got, err := ComputeNextExecution(models.FrequencyWeekly, day, "08:30", from, start)
			if err != nil {
				t.Fatalf("day=%d from=%s: %v", day, from, err)
			}
			if got.Weekday() != time.Weekday(day) {
				t.Errorf("day=%d from=%s: got weekday %s", day, from, got.Weekday())
			}
			if !got.After(from) {
				t.Errorf("day=%d from=%s: %s not after from", day, from, got)
			}
			if got.Hour() != 8 || got.Minute() != 30 {
				t.Errorf("day=%d from=%s: time of day not applied, got %s", day, from, got)
			}
		}
	}
}

func TestComputeNextExecutionWeeklySameWeekday(t *testing.T) {
	// From a Monday, the next Monday occurrence is a week later, never
	// the same day.
	from := date(2024, time.January, 8) // Monday
	got, err := ComputeNextExecution(models.FrequencyWeekly, 1, "09:00", from, date(2024, time.January, 1))
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestComputeNextExecutionBiWeeklyParity(t *testing.T) {
	// Contract starts Monday 2024-01-01. From the following Wednesday
	// the next occurrence must skip 2024-01-08 (odd week) and land on
	// 2024-01-15 09:00.
	start := date(2024, time.January, 1)
	from := date(2024, time.January, 3)
	got, err := ComputeNextExecution(models.FrequencyBiWeekly, 1, "09:00", from, start)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestComputeNextExecutionBiWeeklyOnParityWeek(t *testing.T) {
	// From just after an even occurrence, the next one is 14 days out.
	start := date(2024, time.January, 1)
	from := date(2024, time.January, 15) // second occurrence itself
	got, err := ComputeNextExecution(models.FrequencyBiWeekly, 1, "09:00", start, start)
	if err != nil {
		t.Fatal(err)
	}
	first := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	if !got.Equal(first) {
		t.Fatalf("from start: got %s, want %s", got, first)
	}
	got, err = ComputeNextExecution(models.FrequencyBiWeekly, 1, "09:00", from, start)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, time.January, 29, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("from second occurrence: got %s, want %s", got, want)
	}
}

func TestComputeNextExecutionBiWeeklyBeforeStart(t *testing.T) {
	// A from-date far before the contract start snaps to the first
	// valid occurrence, never before the start date.
	start := date(2024, time.June, 10) // Monday
	from := date(2024, time.January, 1)
	got, err := ComputeNextExecution(models.FrequencyBiWeekly, 1, "10:00", from, start)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, time.June, 10, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestComputeNextExecutionMonthlyClamping(t *testing.T) {
	start := date(2023, time.June, 1)
	tests := []struct {
		name string
		day  int
		from time.Time
		want time.Time
	}{
		{"day 31 from mid february", 31, date(2024, time.February, 10), time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC)},
		{"day 31 from non-leap february", 31, date(2023, time.February, 1), time.Date(2023, time.February, 28, 9, 0, 0, 0, time.UTC)},
		{"day 31 after clamp date rolls to march", 31, date(2024, time.March, 1), time.Date(2024, time.March, 31, 9, 0, 0, 0, time.UTC)},
		{"day 15 same month", 15, date(2024, time.April, 3), time.Date(2024, time.April, 15, 9, 0, 0, 0, time.UTC)},
		{"day 15 on the 15th rolls over", 15, date(2024, time.April, 15), time.Date(2024, time.May, 15, 9, 0, 0, 0, time.UTC)},
		{"day 30 from january 31", 30, date(2024, time.January, 31), time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNextExecution(models.FrequencyMonthly, tt.day, "09:00", tt.from, start)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeNextExecutionDeterministic(t *testing.T) {
	start := date(2024, time.January, 1)
	from := date(2024, time.February, 14)
	first, err := ComputeNextExecution(models.FrequencyBiWeekly, 3, "14:45", from, start)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ComputeNextExecution(models.FrequencyBiWeekly, 3, "14:45", from, start)
	if err != nil {
		t.Fatal(err)
	}
	if !first.Equal(second) {
		t.Fatalf("not deterministic: %s vs %s", first, second)
	}
}

func TestComputeNextExecutionBadTimeOfDay(t *testing.T) {
	_, err := ComputeNextExecution(models.FrequencyWeekly, 1, "9am", date(2024, time.January, 1), date(2024, time.January, 1))
	if err == nil {
		t.Fatal("want error for malformed time of day")
	}
}
