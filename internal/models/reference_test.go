package models

import (
	"testing"
	"time"
)

// TestTodayWeekIndex verifies Monday-first indexing, with Sunday last.
func TestTodayWeekIndex(t *testing.T) {
	// 2024-01-01 was a Monday.
	monday := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		if got := TodayWeekIndex(day); got != i {
			t.Errorf("TodayWeekIndex(%s) = %d, want %d", day.Weekday(), got, i)
		}
	}
}

// TestIsWeekWorkout verifies lookups against the weekly plan.
func TestIsWeekWorkout(t *testing.T) {
	if !IsWeekWorkout("sat") {
		t.Error("expected sat to be a week workout")
	}
	if IsWeekWorkout("holiday") {
		t.Error("expected holiday to be rejected")
	}
}
