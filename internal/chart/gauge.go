package chart

import (
	"fmt"
	"math"
)

// GaugeAngle maps a percentage to the needle rotation in degrees, measured
// clockwise from 12 o'clock: 0% -> -90 (left), 50% -> 0 (up), 100% -> +90 (right).
func GaugeAngle(percent float64) float64 {
	return -90 + clampPercent(percent)/100*180
}

// PolarToCartesian returns the arc point for a percentage using the tick
// convention: angle = 180 - pct*1.8, counter-clockwise from 3 o'clock. The y
// term is subtracted because screen y grows downwards.
func PolarToCartesian(center Point, radius, percent float64) Point {
	rad := (180 - clampPercent(percent)/100*180) * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y - radius*math.Sin(rad),
	}
}

// NeedlePoint returns the tip of a needle of the given length rotated by
// GaugeAngle(percent). It lands on the same point as PolarToCartesian.
func NeedlePoint(center Point, length, percent float64) Point {
	rad := GaugeAngle(percent) * math.Pi / 180
	return Point{
		X: center.X + length*math.Sin(rad),
		Y: center.Y - length*math.Cos(rad),
	}
}

// Tick is a radial scale mark.
type Tick struct {
	Percent float64 `json:"percent"`
	Major   bool    `json:"major"`
	Inner   Point   `json:"inner"`
	Outer   Point   `json:"outer"`
}

// Gauge is the complete geometry of the semi-circular goal gauge.
type Gauge struct {
	Size         float64 `json:"size"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Value        float64 `json:"value"`
	Label        string  `json:"label"`
	Center       Point   `json:"center"`
	Radius       float64 `json:"radius"`
	StrokeWidth  float64 `json:"stroke_width"`
	NeedleAngle  float64 `json:"needle_angle"`
	NeedleEnd    Point   `json:"needle_end"`
	ArcPath      string  `json:"arc_path"`
	ProgressPath string  `json:"progress_path"`
	Ticks        []Tick  `json:"ticks"`
}

// DefaultGaugeSize is the gauge width used when none is requested.
const DefaultGaugeSize = 220

var (
	majorTicks = []float64{0, 50, 100}
	minorTicks = []float64{10, 20, 30, 40, 60, 70, 80, 90}
)

// NewGauge computes the gauge for value (0-100, clamped) at the given size.
func NewGauge(value, size float64) Gauge {
	if size <= 0 {
		size = DefaultGaugeSize
	}
	v := clampPercent(value)
	center := Point{X: size / 2, Y: size * 0.58}
	radius := size * 0.4

	start := Point{X: center.X - radius, Y: center.Y}
	end := Point{X: center.X + radius, Y: center.Y}
	progressEnd := NeedlePoint(center, radius, v)

	g := Gauge{
		Size:         size,
		Width:        size,
		Height:       size * 0.85,
		Value:        v,
		Label:        fmt.Sprintf("%d%%", int(math.Round(v))),
		Center:       center,
		Radius:       radius,
		StrokeWidth:  size * 0.038,
		NeedleAngle:  GaugeAngle(v),
		NeedleEnd:    NeedlePoint(center, radius*0.88, v),
		ArcPath:      arc(start, radius, end),
		ProgressPath: arc(start, radius, progressEnd),
	}

	for _, pct := range majorTicks {
		g.Ticks = append(g.Ticks, tick(center, radius, size*0.028, pct, true))
	}
	for _, pct := range minorTicks {
		g.Ticks = append(g.Ticks, tick(center, radius, size*0.014, pct, false))
	}
	return g
}

func tick(center Point, radius, length, pct float64, major bool) Tick {
	return Tick{
		Percent: pct,
		Major:   major,
		Inner:   PolarToCartesian(center, radius-length, pct),
		Outer:   PolarToCartesian(center, radius, pct),
	}
}

// arc is a clockwise (sweep=1) SVG arc no larger than a half circle.
func arc(from Point, radius float64, to Point) string {
	return fmt.Sprintf("M %s %s A %s %s 0 0 1 %s %s",
		num(from.X), num(from.Y), num(radius), num(radius), num(to.X), num(to.Y))
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Min(100, math.Max(0, p))
}
