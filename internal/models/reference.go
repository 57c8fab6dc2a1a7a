package models

import "time"

// Screen identifies a top-level tab of the app.
type Screen string

const (
	ScreenHome     Screen = "home"
	ScreenTests    Screen = "tests"
	ScreenAnalysis Screen = "analysis"
	ScreenProfile  Screen = "profile"
)

// Screens lists the tabs in display order.
var Screens = []Screen{ScreenHome, ScreenTests, ScreenAnalysis, ScreenProfile}

// Action is a programmatic navigation triggered from a screen.
type Action struct {
	Label    string `json:"label"`
	Navigate Screen `json:"navigate"`
}

// RecordTestAction is the home screen call-to-action.
var RecordTestAction = Action{Label: "Registrar Novo Teste", Navigate: ScreenTests}

// TrainingZone is a heart-rate band with its target pace range.
type TrainingZone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Range       string `json:"range,omitempty"`
	Description string `json:"description"`
	PaceMin     string `json:"pace_min"`
	PaceMax     string `json:"pace_max"`
}

// TrainingZones is static reference data, easiest to hardest.
var TrainingZones = []TrainingZone{
	{ID: "z1", Name: "Z1 - Regenerativa", Range: "60-70% FCmax", Description: "Recuperação ativa e aquecimento", PaceMin: "6:30", PaceMax: "7:00"},
	{ID: "z2", Name: "Z2 - Resistência", Range: "70-80% FCmax", Description: "Base aeróbica e queima de gordura", PaceMin: "5:45", PaceMax: "6:15"},
	{ID: "z3", Name: "Z3 - Tempo", Range: "80-90% FCmax", Description: "Limiar aeróbico e resistência láctica", PaceMin: "5:15", PaceMax: "5:45"},
	{ID: "z4", Name: "Z4 - Limiar", Range: "90-100% FCmax", Description: "Capacidade anaeróbica", PaceMin: "4:45", PaceMax: "5:15"},
	{ID: "z5", Name: "Z5 - Velocidade", Range: "100%+ FCmax", Description: "Potência anaeróbica e sprint", PaceMin: "4:15", PaceMax: "4:45"},
}

// HomeZones is the shorter zone card shown on the home screen. Its names and
// paces differ from TrainingZones, which back the analysis screen.
var HomeZones = []TrainingZone{
	{ID: "z1", Name: "Z1 - Regeneração", Description: "Conversação fácil", PaceMin: "5:45", PaceMax: "6:15"},
	{ID: "z2", Name: "Z2 - Resistência", Description: "Aeróbico leve", PaceMin: "5:15", PaceMax: "5:45"},
	{ID: "z3", Name: "Z3 - Tempo", Description: "Limiar aeróbico", PaceMin: "4:51", PaceMax: "5:15"},
	{ID: "z4", Name: "Z4 - Limiar", Description: "Acumulação lactato", PaceMin: "4:30", PaceMax: "4:51"},
	{ID: "z5", Name: "Z5 - VO2max", Description: "Capacidade máxima", PaceMin: "4:00", PaceMax: "4:30"},
}

// WeekWorkout is one day of the weekly training plan.
type WeekWorkout struct {
	ID      string `json:"id"`
	DayName string `json:"day_name"`
	Summary string `json:"summary"`
}

// WeekWorkouts runs Monday to Sunday.
var WeekWorkouts = []WeekWorkout{
	{ID: "mon", DayName: "Segunda", Summary: "5km • Zona 2"},
	{ID: "tue", DayName: "Terça", Summary: "Descanso ou 3km leve"},
	{ID: "wed", DayName: "Quarta", Summary: "8km • Zona 2"},
	{ID: "thu", DayName: "Quinta", Summary: "5km • Zona 2"},
	{ID: "fri", DayName: "Sexta", Summary: "Descanso"},
	{ID: "sat", DayName: "Sábado", Summary: "10km • Zona 2"},
	{ID: "sun", DayName: "Domingo", Summary: "Longão 15km • Zona 2"},
}

// TodayWeekIndex returns the WeekWorkouts index for t (0 = Monday, 6 = Sunday).
func TodayWeekIndex(t time.Time) int {
	d := int(t.Weekday())
	if d == 0 {
		return 6
	}
	return d - 1
}

// IsWeekWorkout reports whether id names a day of the weekly plan.
func IsWeekWorkout(id string) bool {
	for _, w := range WeekWorkouts {
		if w.ID == id {
			return true
		}
	}
	return false
}

// PersonalInfo is the athlete's static profile.
type PersonalInfo struct {
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	WeightKg  float64 `json:"weight_kg"`
	HeightCm  float64 `json:"height_cm"`
	RestingHR int     `json:"resting_hr"`
	MaxHR     int     `json:"max_hr"`
}

// GoalSettings is the athlete's main race goal.
type GoalSettings struct {
	Distance   string `json:"distance"`
	Time       string `json:"time"`
	TargetPace string `json:"target_pace"`
	Level      string `json:"level"`
}

// CycleConfig describes the current training cycle.
type CycleConfig struct {
	CurrentCycle   string `json:"current_cycle"`
	WeeksRemaining int    `json:"weeks_remaining"`
}

var (
	DefaultPersonalInfo = PersonalInfo{Age: 28, Gender: "M", WeightKg: 72, HeightCm: 178, RestingHR: 54, MaxHR: 192}
	DefaultGoal         = GoalSettings{Distance: "21 km", Time: "1h 45min", TargetPace: "4'58\"/km", Level: "Intermediário"}
	DefaultCycle        = CycleConfig{CurrentCycle: "Macro Ciclo 2", WeeksRemaining: 4}
)

// HistoryEntry is a monthly benchmark shown on the analysis trend charts.
type HistoryEntry struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	DistanceKm float64 `json:"distance_km"`
	Time       string  `json:"time"`
	Pace       string  `json:"pace"`
	VO2max     float64 `json:"vo2max"`
}

// History is the sample five-month 5 km progression.
var History = []HistoryEntry{
	{ID: "1", Label: "Jan", DistanceKm: 5, Time: "28:00", Pace: "5:36", VO2max: 42},
	{ID: "2", Label: "Fev", DistanceKm: 5, Time: "27:15", Pace: "5:27", VO2max: 44},
	{ID: "3", Label: "Mar", DistanceKm: 5, Time: "26:45", Pace: "5:21", VO2max: 45},
	{ID: "4", Label: "Abr", DistanceKm: 5, Time: "26:00", Pace: "5:12", VO2max: 47},
	{ID: "5", Label: "Mai", DistanceKm: 5, Time: "25:30", Pace: "5:06", VO2max: 48},
}

// Probability is the goal-achievement estimate shown on the analysis screen.
type Probability struct {
	Current int    `json:"current"`
	Target  int    `json:"target"`
	Trend   string `json:"trend"`
}

// DefaultProbability is display data, not a computed estimate.
var DefaultProbability = Probability{Current: 87, Target: 90, Trend: "up"}
