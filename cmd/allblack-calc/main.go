// Command allblack-calc runs the test calculations from the command line.
//
//	allblack-calc -distance 10k -time 48:30 -weight 72
//	allblack-calc -current "10 km" -goal "21 km"
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/claude/allblack/internal/calc"
	"github.com/claude/allblack/internal/chart"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	distance := flag.String("distance", calc.DefaultDistance, "test distance (5k, 10k, 21k, 42k)")
	elapsed := flag.String("time", "", "elapsed time as mm:ss or h:mm:ss")
	weight := flag.String("weight", "", "body weight in kg")
	current := flag.String("current", "", "current distance for goal progress (e.g. \"10 km\")")
	goal := flag.String("goal", "", "goal distance for goal progress (e.g. \"21 km\")")
	gauge := flag.Float64("gauge", -1, "print gauge geometry for a 0-100 value")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("allblack-calc", Version)
		return
	}

	ran := false
	if *elapsed != "" {
		if err := printTest(*distance, *elapsed, *weight); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ran = true
	}
	if *current != "" || *goal != "" {
		printGoal(*current, *goal)
		ran = true
	}
	if *gauge >= 0 {
		printGauge(*gauge)
		ran = true
	}

	if !ran {
		fmt.Fprintf(os.Stderr, "Usage: allblack-calc -time <mm:ss> [-distance 10k] [-weight kg]\n")
		fmt.Fprintf(os.Stderr, "       allblack-calc -current <label> -goal <label>\n")
		fmt.Fprintf(os.Stderr, "       allblack-calc -gauge <0-100>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
}

func printTest(distance, elapsed, weight string) error {
	km, err := calc.ReferenceKm(distance)
	if err != nil {
		return err
	}
	seconds, err := calc.ParseDuration(elapsed)
	if err != nil {
		return err
	}
	w, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(weight), ",", "."), 64)
	if err != nil || w <= 0 {
		return fmt.Errorf("invalid weight %q", weight)
	}
	vo2, err := calc.EstimateVO2max(distance, elapsed, w)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("=== Test ===")
	fmt.Printf("  Distance:  %s (%.0f km)\n", distance, km)
	fmt.Printf("  Time:      %s\n", calc.FormatDuration(seconds))
	fmt.Printf("  Pace:      %s/km\n", calc.FormatPace(calc.PaceSecondsPerKm(seconds, km)))
	fmt.Printf("  VO2max:    %.1f\n", vo2)
	return nil
}

func printGoal(current, goal string) {
	p := calc.GoalProgressFromLabels(current, goal)
	fmt.Println()
	fmt.Println("=== Goal ===")
	fmt.Printf("  Progress:  %d%%", p.Percent)
	if p.Estimated {
		fmt.Print(" (estimated)")
	}
	fmt.Println()
}

func printGauge(value float64) {
	g := chart.NewGauge(value, 0)
	fmt.Println()
	fmt.Println("=== Gauge ===")
	fmt.Printf("  Value:     %.0f\n", g.Value)
	fmt.Printf("  Needle:    %.1f deg -> (%.1f, %.1f)\n", g.NeedleAngle, g.NeedleEnd.X, g.NeedleEnd.Y)
	fmt.Printf("  Arc:       %s\n", g.ArcPath)
	fmt.Printf("  Progress:  %s\n", g.ProgressPath)
}
