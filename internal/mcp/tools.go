package mcp

import (
	"context"

	"github.com/claude/allblack/internal/calc"
	"github.com/claude/allblack/internal/chart"
	"github.com/claude/allblack/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func distanceLabels() []string {
	var labels []string
	for _, d := range calc.DistanceOptions {
		if d.Kind == calc.KindDistance {
			labels = append(labels, d.Label)
		}
	}
	return labels
}

// --- Tool definitions ---

var toolEstimateVO2max = mcp.NewTool("estimate_vo2max",
	mcp.WithDescription("Estimate the app's VO2max score for a timed test. The score is an app-specific indicator, not a lab measurement."),
	mcp.WithString("distance", mcp.Description("Test distance (5k, 10k, 21k, 42k). Defaults to 10k."), mcp.Enum(distanceLabels()...)),
	mcp.WithString("time", mcp.Required(), mcp.Description("Elapsed time as mm:ss or hh:mm:ss")),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Body weight in kilograms")),
)

var toolFormatPace = mcp.NewTool("format_pace",
	mcp.WithDescription("Format a pace as M'SS\"/km. Pass seconds_per_km, or distance and time to compute it."),
	mcp.WithNumber("seconds_per_km", mcp.Description("Pace in seconds per kilometre")),
	mcp.WithString("distance", mcp.Description("Test distance (5k, 10k, 21k, 42k)")),
	mcp.WithString("time", mcp.Description("Elapsed time as mm:ss or hh:mm:ss")),
)

var toolGoalProgress = mcp.NewTool("goal_progress",
	mcp.WithDescription("Percentage of the goal distance covered by a distance, capped at 100. When a label has no kilometre figure the result is an estimate."),
	mcp.WithString("current", mcp.Description("Current distance (e.g. '10 km'). Defaults to the latest test.")),
	mcp.WithString("goal", mcp.Description("Goal distance (e.g. '21 km'). Defaults to the athlete's goal.")),
)

var toolListTests = mcp.NewTool("list_tests",
	mcp.WithDescription("List all recorded running tests, newest first, with pace and VO2max."),
)

var toolTestSummary = mcp.NewTool("test_summary",
	mcp.WithDescription("Number of recorded tests and the best VO2max (null when there are none)."),
)

var toolAddTest = mcp.NewTool("add_test",
	mcp.WithDescription("Record a new running test. Pace and VO2max are computed from the inputs."),
	mcp.WithString("distance", mcp.Description("Test distance (5k, 10k, 21k, 42k). Defaults to 10k.")),
	mcp.WithString("time", mcp.Required(), mcp.Description("Elapsed time as mm:ss or hh:mm:ss")),
	mcp.WithString("date", mcp.Required(), mcp.Description("Date of the test as free text (e.g. '12 Out 2023')")),
	mcp.WithString("weight", mcp.Required(), mcp.Description("Body weight in kilograms")),
)

var toolTrainingZones = mcp.NewTool("training_zones",
	mcp.WithDescription("The five heart-rate training zones with their pace ranges."),
)

var toolGaugeGeometry = mcp.NewTool("gauge_geometry",
	mcp.WithDescription("Geometry of the semi-circular progress gauge (needle, arc paths, ticks) for a percentage."),
	mcp.WithNumber("value", mcp.Required(), mcp.Description("Percentage, clamped to 0-100")),
	mcp.WithNumber("size", mcp.Description("Gauge width in pixels. Defaults to 220.")),
)

// --- Tool handlers ---

func (h *handlers) estimateVO2max(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	timeText, err := req.RequireString("time")
	if err != nil {
		return mcp.NewToolResultError("time parameter is required"), nil
	}
	weight, err := req.RequireFloat("weight")
	if err != nil || weight <= 0 {
		return mcp.NewToolResultError("weight must be a positive number"), nil
	}
	distance := req.GetString("distance", calc.DefaultDistance)

	if _, err := calc.ParseDuration(timeText); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	vo2, err := calc.EstimateVO2max(distance, timeText, weight)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"distance": distance,
		"time":     timeText,
		"weight":   weight,
		"vo2max":   vo2,
	})
}

func (h *handlers) formatPace(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seconds := req.GetFloat("seconds_per_km", -1)
	if seconds < 0 {
		timeText := req.GetString("time", "")
		if timeText == "" {
			return mcp.NewToolResultError("pass seconds_per_km, or distance and time"), nil
		}
		km, err := calc.ReferenceKm(req.GetString("distance", calc.DefaultDistance))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		elapsed, err := calc.ParseDuration(timeText)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		seconds = calc.PaceSecondsPerKm(elapsed, km)
	}

	return jsonResult(map[string]any{
		"seconds_per_km": seconds,
		"pace":           calc.FormatPace(seconds) + "/km",
	})
}

func (h *handlers) goalProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goal := req.GetString("goal", models.DefaultGoal.Distance)
	current := req.GetString("current", "")
	if current == "" {
		home, err := h.ds.Home(ctx)
		if err != nil {
			h.log.Error("mcp goal_progress", "error", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		if home.LatestTest != nil {
			current = home.LatestTest.Distance
		}
	}

	p := calc.GoalProgressFromLabels(current, goal)
	return jsonResult(map[string]any{
		"current":   current,
		"goal":      goal,
		"percent":   p.Percent,
		"estimated": p.Estimated,
	})
}

func (h *handlers) listTests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tests, err := h.ds.ListTests(ctx)
	if err != nil {
		h.log.Error("mcp list_tests", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(tests)
}

func (h *handlers) testSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sum, err := h.ds.TestSummary(ctx)
	if err != nil {
		h.log.Error("mcp test_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(map[string]any{
		"count":       sum.Count,
		"best_vo2max": sum.BestVO2max,
		"display":     sum.Display(),
	})
}

func (h *handlers) addTest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := models.TestInput{
		Distance: req.GetString("distance", calc.DefaultDistance),
		Time:     req.GetString("time", ""),
		Date:     req.GetString("date", ""),
		Weight:   req.GetString("weight", ""),
	}

	rec, err := h.ds.AddTest(ctx, in)
	if err != nil {
		return mcp.NewToolResultError("test not recorded: " + err.Error()), nil
	}
	return jsonResult(rec)
}

func (h *handlers) trainingZones(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(models.TrainingZones)
}

func (h *handlers) gaugeGeometry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := req.RequireFloat("value")
	if err != nil {
		return mcp.NewToolResultError("value parameter is required"), nil
	}
	size := req.GetFloat("size", chart.DefaultGaugeSize)
	if size <= 0 {
		return mcp.NewToolResultError("size must be positive"), nil
	}
	return jsonResult(chart.NewGauge(value, size))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
