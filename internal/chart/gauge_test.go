package chart

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Point) bool {
	return nearTol(a, b, eps)
}

func nearTol(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

// TestGaugeAngle verifies the linear [-90, 90] mapping and clamping.
func TestGaugeAngle(t *testing.T) {
	cases := map[float64]float64{0: -90, 50: 0, 100: 90, 25: -45, -10: -90, 150: 90}
	for in, want := range cases {
		if got := GaugeAngle(in); got != want {
			t.Errorf("GaugeAngle(%v) = %v, want %v", in, got, want)
		}
	}
}

// TestGaugeConventionsAgree verifies that the needle formula and the tick
// formula land on the same arc point at the reference percentages.
func TestGaugeConventionsAgree(t *testing.T) {
	c := Point{X: 110, Y: 127.6}
	r := 88.0
	want := map[float64]Point{
		0:   {X: c.X - r, Y: c.Y},
		50:  {X: c.X, Y: c.Y - r},
		100: {X: c.X + r, Y: c.Y},
	}
	for pct, w := range want {
		needle := NeedlePoint(c, r, pct)
		tick := PolarToCartesian(c, r, pct)
		if !near(needle, w) {
			t.Errorf("NeedlePoint(%v) = %+v, want %+v", pct, needle, w)
		}
		if !near(tick, w) {
			t.Errorf("PolarToCartesian(%v) = %+v, want %+v", pct, tick, w)
		}
	}
	for pct := 0.0; pct <= 100; pct += 5 {
		if a, b := NeedlePoint(c, r, pct), PolarToCartesian(c, r, pct); !near(a, b) {
			t.Errorf("pct %v: needle %+v != tick %+v", pct, a, b)
		}
	}
}

// TestGaugeUpperHalf verifies the whole sweep stays above the centre line.
func TestGaugeUpperHalf(t *testing.T) {
	c := Point{X: 0, Y: 0}
	for pct := 0.0; pct <= 100; pct += 10 {
		if p := PolarToCartesian(c, 10, pct); p.Y > eps {
			t.Errorf("pct %v: y = %v, want <= 0", pct, p.Y)
		}
	}
}

// TestNewGauge verifies the derived dimensions, paths and tick set.
func TestNewGauge(t *testing.T) {
	g := NewGauge(100, 200)
	if !nearTol(g.Center, Point{X: 100, Y: 116}, 1e-9) {
		t.Errorf("center = %+v, want {100 116}", g.Center)
	}
	if math.Abs(g.Radius-80) > 1e-9 {
		t.Errorf("radius = %v, want 80", g.Radius)
	}
	if g.ArcPath != "M 20 116 A 80 80 0 0 1 180 116" {
		t.Errorf("arc path = %q", g.ArcPath)
	}
	if g.ProgressPath != g.ArcPath {
		t.Errorf("full progress path = %q, want %q", g.ProgressPath, g.ArcPath)
	}
	if g.Label != "100%" {
		t.Errorf("label = %q, want 100%%", g.Label)
	}
	if len(g.Ticks) != 11 {
		t.Fatalf("ticks = %d, want 11", len(g.Ticks))
	}
	majors := 0
	for _, tk := range g.Ticks {
		if tk.Major {
			majors++
		}
	}
	if majors != 3 {
		t.Errorf("major ticks = %d, want 3", majors)
	}
}

// TestNewGaugeClampsAndDefaults verifies out-of-range values and size fallback.
func TestNewGaugeClampsAndDefaults(t *testing.T) {
	g := NewGauge(140, 0)
	if g.Size != DefaultGaugeSize {
		t.Errorf("size = %v, want %v", g.Size, DefaultGaugeSize)
	}
	if g.Value != 100 || g.NeedleAngle != 90 {
		t.Errorf("value/angle = %v/%v, want 100/90", g.Value, g.NeedleAngle)
	}
	if g = NewGauge(-3, 220); g.Label != "0%" {
		t.Errorf("label = %q, want 0%%", g.Label)
	}
}
