// Package chart lays out the analytics charts and the goal gauge in screen
// coordinates (origin top-left, y growing downwards).
package chart

import (
	"fmt"
	"strings"
)

// Point is a position in screen coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartPoint is a plotted sample of a series.
type ChartPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Sample is one input value of a series.
type Sample struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// LayoutLinePoints places samples inside a width x height viewport. Values are
// normalised to [0,1] over the series range (a flat series uses a range of 1),
// spread uniformly across the plot width and inverted so that larger values
// sit higher.
func LayoutLinePoints(series []Sample, width, height, padding float64) []ChartPoint {
	if len(series) == 0 {
		return nil
	}

	lo, hi := bounds(series)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	plotW := width - 2*padding
	plotH := height - 2*padding

	points := make([]ChartPoint, len(series))
	for i, s := range series {
		x := padding + plotW/2
		if len(series) > 1 {
			x = padding + float64(i)*plotW/float64(len(series)-1)
		}
		norm := (s.Value - lo) / span
		points[i] = ChartPoint{
			X:     x,
			Y:     padding + (1-norm)*plotH,
			Label: s.Label,
			Value: s.Value,
		}
	}
	return points
}

// LinePath returns an SVG path through the points.
func LinePath(points []ChartPoint) string {
	var b strings.Builder
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s %s %s", cmd, num(p.X), num(p.Y))
	}
	return b.String()
}

// BarHeights returns bar heights as a percentage of the chart height. The
// smallest value gets 20 and the largest 100 so no bar disappears.
func BarHeights(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	series := make([]Sample, len(values))
	for i, v := range values {
		series[i] = Sample{Value: v}
	}
	lo, hi := bounds(series)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	heights := make([]float64, len(values))
	for i, v := range values {
		heights[i] = 20 + (v-lo)/span*80
	}
	return heights
}

func bounds(series []Sample) (lo, hi float64) {
	lo, hi = series[0].Value, series[0].Value
	for _, s := range series[1:] {
		lo = min(lo, s.Value)
		hi = max(hi, s.Value)
	}
	return lo, hi
}

// num formats coordinates with at most two decimals.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
