package calc

import (
	"errors"
	"fmt"
	"testing"
)

// TestParseDurationToSecondsMinutes verifies m*60+s for every valid mm:ss input
// over a representative range of minutes and all second values.
func TestParseDurationToSecondsMinutes(t *testing.T) {
	for _, m := range []int{0, 1, 9, 23, 48, 59, 75, 120} {
		for s := 0; s < 60; s++ {
			text := fmt.Sprintf("%d:%02d", m, s)
			if got, want := ParseDurationToSeconds(text), m*60+s; got != want {
				t.Fatalf("ParseDurationToSeconds(%q) = %d, want %d", text, got, want)
			}
		}
	}
}

// TestParseDurationToSecondsHours verifies h*3600+m*60+s for hh:mm:ss input.
func TestParseDurationToSecondsHours(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"1:45:00", 6300},
		{"01:45:00", 6300},
		{"0:00:01", 1},
		{"3:59:59", 3*3600 + 59*60 + 59},
	}
	for _, tc := range cases {
		if got := ParseDurationToSeconds(tc.input); got != tc.want {
			t.Errorf("ParseDurationToSeconds(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

// TestParseDurationToSecondsLenient verifies the best-effort policy: bad fields
// count as zero and input with one or more than three fields yields zero.
func TestParseDurationToSecondsLenient(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"48", 0},
		{"abc", 0},
		{"48:xx", 48 * 60},
		{"xx:30", 30},
		{" 48:30 ", 2910},
		{"1:2:3:4", 0},
		{"0:48:30:00", 0},
	}
	for _, tc := range cases {
		if got := ParseDurationToSeconds(tc.input); got != tc.want {
			t.Errorf("ParseDurationToSeconds(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

// TestParseDurationStrict verifies that the strict parser rejects what the
// lenient one coerces to zero.
func TestParseDurationStrict(t *testing.T) {
	good := map[string]int{
		"48:30":   2910,
		"1:45:00": 6300,
		"90:00":   5400,
	}
	for in, want := range good {
		got, err := ParseDuration(in)
		if err != nil {
			t.Errorf("ParseDuration(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDuration(%q) = %d, want %d", in, got, want)
		}
	}

	for _, in := range []string{"", "48", "48:xx", "1:2:3:4", "48:60", "1:60:00", "-1:30"} {
		if _, err := ParseDuration(in); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("ParseDuration(%q) error = %v, want ErrInvalidDuration", in, err)
		}
	}
}

// TestFormatPace verifies M'SS" output including the 60-second rollover.
func TestFormatPace(t *testing.T) {
	cases := []struct {
		secs float64
		want string
	}{
		{291, "4'51\""},
		{279, "4'39\""},
		{300, "5'00\""},
		{59.6, "1'00\""},
		{119.5, "2'00\""},
		{0, "0'00\""},
		{-5, "0'00\""},
	}
	for _, tc := range cases {
		if got := FormatPace(tc.secs); got != tc.want {
			t.Errorf("FormatPace(%v) = %q, want %q", tc.secs, got, tc.want)
		}
	}
}

// TestFormatDuration verifies m:ss and h:mm:ss rendering.
func TestFormatDuration(t *testing.T) {
	cases := []struct {
		secs int
		want string
	}{
		{2910, "48:30"},
		{6300, "1:45:00"},
		{5, "0:05"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.secs); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.secs, got, tc.want)
		}
	}
}
