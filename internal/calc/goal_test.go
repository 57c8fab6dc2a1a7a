package calc

import "testing"

// TestGoalProgressPercent verifies rounding and clamping at 100.
func TestGoalProgressPercent(t *testing.T) {
	cases := []struct {
		cur, goal float64
		want      int
	}{
		{10, 21, 48},
		{25, 21, 100},
		{21, 21, 100},
		{0, 21, 0},
		{10, 0, 0},
		{10, -1, 0},
	}
	for _, tc := range cases {
		if got := GoalProgressPercent(tc.cur, tc.goal); got != tc.want {
			t.Errorf("GoalProgressPercent(%v, %v) = %d, want %d", tc.cur, tc.goal, got, tc.want)
		}
	}
}

// TestGoalProgressFromLabels verifies label parsing and that the 85% stand-in
// is flagged as estimated rather than passed off as a measurement.
func TestGoalProgressFromLabels(t *testing.T) {
	got := GoalProgressFromLabels("10 km", "21 km")
	if got.Percent != 48 || got.Estimated {
		t.Errorf("10 km of 21 km = %+v, want {48 false}", got)
	}

	got = GoalProgressFromLabels("12 min", "21 km")
	if got.Percent != DefaultGoalProgress || !got.Estimated {
		t.Errorf("12 min of 21 km = %+v, want {85 true}", got)
	}

	got = GoalProgressFromLabels("10k", "marathon")
	if !got.Estimated {
		t.Errorf("unparseable goal = %+v, want estimated", got)
	}
}

// TestParseKilometres verifies unit suffixes and decimal commas.
func TestParseKilometres(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"21 km", 21, true},
		{"10k", 10, true},
		{"10,5 km", 10.5, true},
		{"12 min", 0, false},
		{"km", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseKilometres(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseKilometres(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
