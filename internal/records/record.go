// Package records holds the in-memory test history.
package records

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/claude/allblack/internal/calc"
	"github.com/claude/allblack/internal/models"
)

// ValidationError reports a rejected new-test form. Fields names the inputs
// that are missing or invalid; Err carries the underlying cause, if any.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %v", strings.Join(e.Fields, ", "), e.Err)
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewRecord validates a form submission and computes the derived fields.
// Time, date and weight are required; the distance defaults to calc.DefaultDistance.
func NewRecord(in models.TestInput, id string) (models.TestRecord, error) {
	var missing []string
	if strings.TrimSpace(in.Time) == "" {
		missing = append(missing, "time")
	}
	if strings.TrimSpace(in.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(in.Weight) == "" {
		missing = append(missing, "weight")
	}
	if len(missing) > 0 {
		return models.TestRecord{}, &ValidationError{Fields: missing}
	}

	distance := strings.TrimSpace(in.Distance)
	if distance == "" {
		distance = calc.DefaultDistance
	}
	km, err := calc.ReferenceKm(distance)
	if err != nil {
		return models.TestRecord{}, &ValidationError{Fields: []string{"distance"}, Err: err}
	}

	elapsed, err := calc.ParseDuration(in.Time)
	if err != nil {
		return models.TestRecord{}, &ValidationError{Fields: []string{"time"}, Err: err}
	}
	if elapsed == 0 {
		return models.TestRecord{}, &ValidationError{Fields: []string{"time"}, Err: calc.ErrInvalidDuration}
	}

	weight, err := parseWeight(in.Weight)
	if err != nil {
		return models.TestRecord{}, &ValidationError{Fields: []string{"weight"}, Err: err}
	}

	pace := calc.PaceSecondsPerKm(elapsed, km)
	vo2, err := calc.EstimateVO2max(distance, in.Time, weight)
	if err != nil {
		return models.TestRecord{}, fmt.Errorf("estimating vo2max: %w", err)
	}

	return models.TestRecord{
		ID:               id,
		Distance:         distance,
		Time:             strings.TrimSpace(in.Time),
		ElapsedSeconds:   elapsed,
		Date:             strings.TrimSpace(in.Date),
		WeightKg:         weight,
		PaceSecondsPerKm: pace,
		Pace:             calc.FormatPace(pace) + "/km",
		VO2max:           vo2,
	}, nil
}

var errWeight = errors.New("weight must be a positive number of kilograms")

func parseWeight(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w <= 0 {
		return 0, errWeight
	}
	return w, nil
}
