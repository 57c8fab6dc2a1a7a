package calc

import "math"

// DefaultGoalProgress stands in when the current distance has no kilometre
// figure (e.g. a "12 min" test). Progress.Estimated marks such results.
const DefaultGoalProgress = 85

// Progress is a goal completion percentage.
type Progress struct {
	Percent   int  `json:"percent"`
	Estimated bool `json:"estimated"`
}

// GoalProgressPercent returns round(min(100, current/goal*100)), or 0 for a
// non-positive goal.
func GoalProgressPercent(currentKm, goalKm float64) int {
	if goalKm <= 0 || currentKm <= 0 {
		return 0
	}
	return int(math.Round(math.Min(100, currentKm/goalKm*100)))
}

// GoalProgressFromLabels computes progress from labels such as "10 km" and
// "21 km". When either label cannot be read as kilometres the result is
// DefaultGoalProgress with Estimated set.
func GoalProgressFromLabels(current, goal string) Progress {
	cur, ok := ParseKilometres(current)
	if !ok {
		return Progress{Percent: DefaultGoalProgress, Estimated: true}
	}
	g, ok := ParseKilometres(goal)
	if !ok || g <= 0 {
		return Progress{Percent: DefaultGoalProgress, Estimated: true}
	}
	return Progress{Percent: GoalProgressPercent(cur, g)}
}
