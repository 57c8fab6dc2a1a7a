package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned when duration text cannot be parsed strictly.
var ErrInvalidDuration = errors.New("invalid duration")

// ParseDurationToSeconds converts "mm:ss" or "hh:mm:ss" text to seconds.
// Non-numeric fields count as zero and input with fewer than two or more than
// three fields yields zero. It never fails; use ParseDuration when malformed
// input must be rejected.
func ParseDurationToSeconds(text string) int {
	fields := strings.Split(strings.TrimSpace(text), ":")
	if len(fields) < 2 || len(fields) > 3 {
		return 0
	}

	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			n = 0
		}
		nums[i] = n
	}

	if len(nums) == 3 {
		return nums[0]*3600 + nums[1]*60 + nums[2]
	}
	return nums[0]*60 + nums[1]
}

// ParseDuration is the strict counterpart of ParseDurationToSeconds.
// Only the leading field may exceed 59.
func ParseDuration(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	fields := strings.Split(trimmed, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return 0, fmt.Errorf("%w: %q: want mm:ss or hh:mm:ss", ErrInvalidDuration, text)
	}

	total := 0
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q: field %d is not a number", ErrInvalidDuration, text, i+1)
		}
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("%w: %q: field %d out of range", ErrInvalidDuration, text, i+1)
		}
		total = total*60 + n
	}
	return total, nil
}

// FormatPace renders seconds per kilometre as M'SS".
func FormatPace(secondsPerKm float64) string {
	if secondsPerKm < 0 || math.IsNaN(secondsPerKm) || math.IsInf(secondsPerKm, 0) {
		secondsPerKm = 0
	}
	mins := int(math.Floor(secondsPerKm / 60))
	secs := int(math.Round(math.Mod(secondsPerKm, 60)))
	if secs == 60 {
		mins++
		secs = 0
	}
	return fmt.Sprintf("%d'%02d\"", mins, secs)
}

// FormatDuration renders seconds as m:ss, or h:mm:ss from one hour up.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// PaceSecondsPerKm returns the average seconds needed per kilometre.
func PaceSecondsPerKm(elapsedSeconds int, km float64) float64 {
	if km <= 0 {
		return 0
	}
	return float64(elapsedSeconds) / km
}
