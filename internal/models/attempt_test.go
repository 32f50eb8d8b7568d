package models

import (
	"testing"
	"time"
)

func TestAttemptDeadline(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	attempt := Attempt{StartTime: start, DurationMinutes: 30}

	want := start.Add(30 * time.Minute)
	if got := attempt.Deadline(); !got.Equal(want) {
		t.Errorf("Deadline() = %v, want %v", got, want)
	}
}

func TestAttemptIsLate(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	attempt := Attempt{StartTime: start, DurationMinutes: 10}

	cases := []struct {
		name string
		at   time.Time
		late bool
	}{
		{"immediately", start, false},
		{"within window", start.Add(5 * time.Minute), false},
		{"exactly at deadline", start.Add(10 * time.Minute), false},
		{"one second past", start.Add(10*time.Minute + time.Second), true},
		{"hours past", start.Add(3 * time.Hour), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := attempt.IsLate(tc.at); got != tc.late {
				t.Errorf("IsLate(%v) = %v, want %v", tc.at, got, tc.late)
			}
		})
	}
}
