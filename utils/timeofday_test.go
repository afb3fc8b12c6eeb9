package utils

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"09:00", 9, 0, false},
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"14:45", 14, 45, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"9am", 0, 0, true},
		{"", 0, 0, true},
		{"12", 0, 0, true},
		{"12:00:00", 0, 0, true},
	}
	for _, tt := range tests {
		hour, minute, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if hour != tt.hour || minute != tt.minute {
			t.Errorf("%q: got %d:%d, want %d:%d", tt.in, hour, minute, tt.hour, tt.minute)
		}
	}
}
