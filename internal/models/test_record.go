package models

// TestRecord is one timed running test. Pace, PaceSecondsPerKm and VO2max are
// derived from Distance, Time and WeightKg whenever the record is written.
type TestRecord struct {
	ID               string  `json:"id"`
	Distance         string  `json:"distance"`
	Time             string  `json:"time"`
	ElapsedSeconds   int     `json:"elapsed_seconds"`
	Date             string  `json:"date"`
	WeightKg         float64 `json:"weight_kg"`
	PaceSecondsPerKm float64 `json:"pace_seconds_per_km"`
	Pace             string  `json:"pace"`
	VO2max           float64 `json:"vo2max"`
}

// TestInput carries the user-editable fields of a TestRecord, as typed into
// the new-test form. Weight is kept as text so an empty field can be told
// apart from zero.
type TestInput struct {
	Distance string `json:"distance"`
	Time     string `json:"time"`
	Date     string `json:"date"`
	Weight   string `json:"weight"`
}
