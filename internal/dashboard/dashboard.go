// Package dashboard assembles the data behind each screen of the app from
// the test history, the preferences and the static reference tables.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/claude/allblack/internal/calc"
	"github.com/claude/allblack/internal/chart"
	"github.com/claude/allblack/internal/metrics"
	"github.com/claude/allblack/internal/models"
	"github.com/claude/allblack/internal/prefs"
	"github.com/claude/allblack/internal/records"
)

// ErrUnknownWorkout is returned when toggling an id that is not a day of the
// weekly plan.
var ErrUnknownWorkout = errors.New("unknown workout")

// HydrationTip is shown on the home screen.
const HydrationTip = "Beba 500-750ml de água antes do treino de hoje."

type Dashboard struct {
	tests   *records.Store
	prefs   *prefs.Store
	metrics *metrics.Manager
	now     func() time.Time
}

// New creates a Dashboard. m may be nil.
func New(tests *records.Store, p *prefs.Store, m *metrics.Manager) *Dashboard {
	d := &Dashboard{tests: tests, prefs: p, metrics: m, now: time.Now}
	d.observe()
	return d
}

// WorkoutDay is a day of the weekly plan with its completion flag.
type WorkoutDay struct {
	models.WeekWorkout
	Completed bool `json:"completed"`
	Today     bool `json:"today"`
}

type Home struct {
	Greeting     string                `json:"greeting"`
	Name         string                `json:"name"`
	NextWorkout  WorkoutDay            `json:"next_workout"`
	LatestTest   *models.TestRecord    `json:"latest_test"`
	Goal         models.GoalSettings   `json:"goal"`
	GoalProgress calc.Progress         `json:"goal_progress"`
	Zones        []models.TrainingZone `json:"zones"`
	HydrationTip string                `json:"hydration_tip"`
	Week         []WorkoutDay          `json:"week"`
	Action       models.Action         `json:"action"`
}

// Home returns the home screen.
func (d *Dashboard) Home(ctx context.Context) (*Home, error) {
	week, err := d.Workouts(ctx)
	if err != nil {
		return nil, err
	}
	name := d.prefs.Name()
	h := &Home{
		Greeting:     "Olá, " + name,
		Name:         name,
		NextWorkout:  week[models.TodayWeekIndex(d.now())],
		Goal:         models.DefaultGoal,
		Zones:        models.HomeZones[:3],
		HydrationTip: HydrationTip,
		Week:         week,
		Action:       models.RecordTestAction,
	}

	current := ""
	if latest, ok := d.tests.Latest(); ok {
		h.LatestTest = &latest
		current = latest.Distance
	}
	h.GoalProgress = calc.GoalProgressFromLabels(current, models.DefaultGoal.Distance)
	return h, nil
}

// Workouts returns the weekly plan, Monday first.
func (d *Dashboard) Workouts(_ context.Context) ([]WorkoutDay, error) {
	today := models.TodayWeekIndex(d.now())
	out := make([]WorkoutDay, len(models.WeekWorkouts))
	for i, w := range models.WeekWorkouts {
		out[i] = WorkoutDay{
			WeekWorkout: w,
			Completed:   d.prefs.IsCompleted(w.ID),
			Today:       i == today,
		}
	}
	return out, nil
}

// ToggleWorkout flips the completion of a day of the plan.
func (d *Dashboard) ToggleWorkout(ctx context.Context, id string) (WorkoutDay, error) {
	if !models.IsWeekWorkout(id) {
		return WorkoutDay{}, fmt.Errorf("%w: %q", ErrUnknownWorkout, id)
	}
	d.prefs.ToggleCompleted(id)

	week, err := d.Workouts(ctx)
	if err != nil {
		return WorkoutDay{}, err
	}
	for _, w := range week {
		if w.ID == id {
			return w, nil
		}
	}
	return WorkoutDay{}, fmt.Errorf("%w: %q", ErrUnknownWorkout, id)
}

type Profile struct {
	Name     string              `json:"name"`
	Personal models.PersonalInfo `json:"personal"`
	Goal     models.GoalSettings `json:"goal"`
	Cycle    models.CycleConfig  `json:"cycle"`
	Tests    records.Summary     `json:"tests"`
}

// Profile returns the profile screen.
func (d *Dashboard) Profile(_ context.Context) (*Profile, error) {
	return &Profile{
		Name:     d.prefs.Name(),
		Personal: models.DefaultPersonalInfo,
		Goal:     models.DefaultGoal,
		Cycle:    models.DefaultCycle,
		Tests:    d.tests.Summary(),
	}, nil
}

// SetName changes the display name and returns the stored value.
func (d *Dashboard) SetName(_ context.Context, name string) (string, error) {
	return d.prefs.SetName(name), nil
}

// Viewport is the drawing area of a line chart.
type Viewport struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
}

// DefaultViewport fits the analysis cards on a phone screen.
var DefaultViewport = Viewport{Width: 340, Height: 160, Padding: 16}

// LineChart is a laid-out series with its SVG path.
type LineChart struct {
	Points []chart.ChartPoint `json:"points"`
	Path   string             `json:"path"`
}

type ProbabilityCard struct {
	models.Probability
	Gauge chart.Gauge `json:"gauge"`
}

type Analysis struct {
	Viewport    Viewport              `json:"viewport"`
	Zones       []models.TrainingZone `json:"zones"`
	History     []models.HistoryEntry `json:"history"`
	VO2max      LineChart             `json:"vo2max"`
	Pace        LineChart             `json:"pace"`
	VO2maxBars  []float64             `json:"vo2max_bars"`
	PaceBars    []float64             `json:"pace_bars"`
	Probability ProbabilityCard       `json:"probability"`
}

// Analysis returns the analysis screen laid out for v. Zero dimensions take
// the DefaultViewport values.
func (d *Dashboard) Analysis(_ context.Context, v Viewport) (*Analysis, error) {
	for _, f := range []float64{v.Width, v.Height, v.Padding} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("viewport %vx%v padding %v is not finite", v.Width, v.Height, v.Padding)
		}
	}
	if v.Width <= 0 {
		v.Width = DefaultViewport.Width
	}
	if v.Height <= 0 {
		v.Height = DefaultViewport.Height
	}
	if v.Padding < 0 || 2*v.Padding >= v.Width || 2*v.Padding >= v.Height {
		return nil, fmt.Errorf("padding %v does not fit a %vx%v chart", v.Padding, v.Width, v.Height)
	}

	vo2 := make([]chart.Sample, len(models.History))
	pace := make([]chart.Sample, len(models.History))
	vo2Values := make([]float64, len(models.History))
	paceValues := make([]float64, len(models.History))
	for i, h := range models.History {
		secs := float64(calc.ParseDurationToSeconds(h.Pace))
		vo2[i] = chart.Sample{Label: h.Label, Value: h.VO2max}
		pace[i] = chart.Sample{Label: h.Label, Value: secs}
		vo2Values[i] = h.VO2max
		paceValues[i] = secs
	}

	vo2Points := chart.LayoutLinePoints(vo2, v.Width, v.Height, v.Padding)
	pacePoints := chart.LayoutLinePoints(pace, v.Width, v.Height, v.Padding)

	return &Analysis{
		Viewport:   v,
		Zones:      models.TrainingZones,
		History:    models.History,
		VO2max:     LineChart{Points: vo2Points, Path: chart.LinePath(vo2Points)},
		Pace:       LineChart{Points: pacePoints, Path: chart.LinePath(pacePoints)},
		VO2maxBars: chart.BarHeights(vo2Values),
		PaceBars:   chart.BarHeights(paceValues),
		Probability: ProbabilityCard{
			Probability: models.DefaultProbability,
			Gauge:       chart.NewGauge(float64(models.DefaultProbability.Current), chart.DefaultGaugeSize),
		},
	}, nil
}

// ListTests returns the test history, newest first.
func (d *Dashboard) ListTests(_ context.Context) ([]models.TestRecord, error) {
	return d.tests.List(), nil
}

// GetTest returns one test.
func (d *Dashboard) GetTest(_ context.Context, id string) (*models.TestRecord, error) {
	rec, ok := d.tests.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", records.ErrNotFound, id)
	}
	return &rec, nil
}

// TestSummary returns the history header.
func (d *Dashboard) TestSummary(_ context.Context) (*records.Summary, error) {
	s := d.tests.Summary()
	return &s, nil
}

// AddTest validates and stores a new test.
func (d *Dashboard) AddTest(_ context.Context, in models.TestInput) (*models.TestRecord, error) {
	rec, err := d.tests.Create(in)
	if err != nil {
		d.count("create_rejected")
		return nil, err
	}
	d.count("create")
	return &rec, nil
}

// UpdateTest replaces the editable fields of a test.
func (d *Dashboard) UpdateTest(_ context.Context, id string, in models.TestInput) (*models.TestRecord, error) {
	rec, err := d.tests.Update(id, in)
	if err != nil {
		return nil, err
	}
	d.count("update")
	return &rec, nil
}

// RemoveTest deletes a test.
func (d *Dashboard) RemoveTest(_ context.Context, id string) error {
	if err := d.tests.Remove(id); err != nil {
		return err
	}
	d.count("delete")
	return nil
}

func (d *Dashboard) count(op string) {
	if d.metrics == nil {
		return
	}
	d.metrics.CounterTestRecords.WithLabelValues(op).Inc()
	d.observe()
}

func (d *Dashboard) observe() {
	if d.metrics == nil {
		return
	}
	d.metrics.GaugeTestRecords.Set(float64(d.tests.Len()))
}
