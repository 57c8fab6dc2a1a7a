package calc

import (
	"fmt"
	"math"
)

// EstimateVO2max returns the app's VO2max score for a timed test.
//
// The arithmetic is a placeholder kept for parity with the scores users have
// already seen; it is not a physiological model:
//
//	pace  = minutes / km
//	score = 60 + 10/pace - weightKg*0.05   (one decimal)
func EstimateVO2max(distance, durationText string, weightKg float64) (float64, error) {
	km, err := ReferenceKm(distance)
	if err != nil {
		return 0, err
	}
	seconds := ParseDurationToSeconds(durationText)
	if seconds <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, durationText)
	}
	return vo2max(seconds, km, weightKg), nil
}

func vo2max(elapsedSeconds int, km, weightKg float64) float64 {
	pace := float64(elapsedSeconds) / 60 / km
	return round1(60 + 10/pace - weightKg*0.05)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
