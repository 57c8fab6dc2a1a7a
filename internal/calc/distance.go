package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownDistance is returned for labels missing from the category table.
	ErrUnknownDistance = errors.New("unknown distance category")
	// ErrNoReferenceDistance is returned when a duration-based category has no
	// kilometre figure to derive a pace from.
	ErrNoReferenceDistance = errors.New("distance category has no reference kilometres")
)

// DistanceKind tells whether a category fixes the distance or the duration.
type DistanceKind string

const (
	KindDistance DistanceKind = "distance"
	KindDuration DistanceKind = "duration"
)

// DistanceCategory is a selectable test type.
type DistanceCategory struct {
	Label   string       `json:"label"`
	Kind    DistanceKind `json:"kind"`
	Km      float64      `json:"km,omitempty"`
	Minutes float64      `json:"minutes,omitempty"`
}

// DistanceOptions lists the categories offered on the new-test form, in display order.
var DistanceOptions = []DistanceCategory{
	{Label: "5k", Kind: KindDistance, Km: 5},
	{Label: "10k", Kind: KindDistance, Km: 10},
	{Label: "21k", Kind: KindDistance, Km: 21},
	{Label: "42k", Kind: KindDistance, Km: 42},
	{Label: "12 min", Kind: KindDuration, Minutes: 12},
}

// DefaultDistance is preselected on the new-test form.
const DefaultDistance = "10k"

// distanceAliases maps alternative spellings to the canonical option label.
var distanceAliases = map[string]string{
	"5 km":   "5k",
	"10 km":  "10k",
	"21 km":  "21k",
	"42 km":  "42k",
	"12min":  "12 min",
	"cooper": "12 min",
}

// LookupDistance resolves a label such as "10k" or "10 km" to its category.
func LookupDistance(label string) (DistanceCategory, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if canonical, ok := distanceAliases[key]; ok {
		key = canonical
	}
	for _, c := range DistanceOptions {
		if c.Label == key {
			return c, nil
		}
	}
	return DistanceCategory{}, fmt.Errorf("%w: %q", ErrUnknownDistance, label)
}

// ReferenceKm returns the kilometre figure of a distance label.
func ReferenceKm(label string) (float64, error) {
	c, err := LookupDistance(label)
	if err != nil {
		return 0, err
	}
	if c.Kind != KindDistance {
		return 0, fmt.Errorf("%w: %q", ErrNoReferenceDistance, label)
	}
	return c.Km, nil
}

// ParseKilometres reads a kilometre figure from free text like "21 km",
// "10k" or "10,5 km". Labels without a kilometre unit report false.
func ParseKilometres(label string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.HasSuffix(s, "km"):
		s = strings.TrimSuffix(s, "km")
	case strings.HasSuffix(s, "k"):
		s = strings.TrimSuffix(s, "k")
	default:
		return 0, false
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	km, err := strconv.ParseFloat(s, 64)
	if err != nil || km < 0 {
		return 0, false
	}
	return km, true
}
