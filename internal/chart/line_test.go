package chart

import (
	"math"
	"testing"
)

// TestLayoutLinePoints verifies spacing and the inverted vertical axis.
func TestLayoutLinePoints(t *testing.T) {
	series := []Sample{{"Jan", 42}, {"Fev", 44}, {"Mar", 45}, {"Abr", 47}, {"Mai", 52}}
	pts := LayoutLinePoints(series, 300, 120, 10)

	if len(pts) != len(series) {
		t.Fatalf("len = %d, want %d", len(pts), len(series))
	}
	if pts[0].X != 10 || pts[4].X != 290 {
		t.Errorf("x range = [%v, %v], want [10, 290]", pts[0].X, pts[4].X)
	}
	if pts[1].X != 80 {
		t.Errorf("x[1] = %v, want 80", pts[1].X)
	}
	// Lowest value at the bottom edge, highest at the top edge.
	if pts[0].Y != 110 {
		t.Errorf("y(min) = %v, want 110", pts[0].Y)
	}
	if pts[4].Y != 10 {
		t.Errorf("y(max) = %v, want 10", pts[4].Y)
	}
	if pts[2].Label != "Mar" || pts[2].Value != 45 {
		t.Errorf("point 2 = %+v, want label Mar value 45", pts[2])
	}
}

// TestLayoutLinePointsFlat verifies a constant series does not divide by zero
// and keeps every point on the same row.
func TestLayoutLinePointsFlat(t *testing.T) {
	pts := LayoutLinePoints([]Sample{{"a", 5}, {"b", 5}, {"c", 5}}, 200, 100, 0)
	for i, p := range pts {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			t.Fatalf("point %d y = %v", i, p.Y)
		}
		if p.Y != pts[0].Y {
			t.Errorf("point %d y = %v, want %v", i, p.Y, pts[0].Y)
		}
	}
}

// TestLayoutLinePointsEdgeCases verifies empty and single-sample series.
func TestLayoutLinePointsEdgeCases(t *testing.T) {
	if pts := LayoutLinePoints(nil, 100, 100, 0); pts != nil {
		t.Errorf("empty series = %v, want nil", pts)
	}
	pts := LayoutLinePoints([]Sample{{"only", 3}}, 100, 50, 10)
	if len(pts) != 1 || pts[0].X != 50 {
		t.Errorf("single point = %+v, want x=50", pts)
	}
}

// TestLinePath verifies the SVG path syntax.
func TestLinePath(t *testing.T) {
	pts := []ChartPoint{{X: 0, Y: 10}, {X: 12.5, Y: 0.333}}
	if got, want := LinePath(pts), "M 0 10 L 12.5 0.33"; got != want {
		t.Errorf("LinePath = %q, want %q", got, want)
	}
	if got := LinePath(nil); got != "" {
		t.Errorf("LinePath(nil) = %q, want empty", got)
	}
}

// TestBarHeights verifies the 20..100 scale and the flat-range guard.
func TestBarHeights(t *testing.T) {
	got := BarHeights([]float64{42, 47, 52})
	want := []float64{20, 60, 100}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("height[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	for _, h := range BarHeights([]float64{7, 7}) {
		if h != 20 {
			t.Errorf("flat height = %v, want 20", h)
		}
	}
}
