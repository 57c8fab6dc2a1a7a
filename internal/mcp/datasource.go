package mcp

import (
	"context"

	"github.com/claude/allblack/internal/dashboard"
	"github.com/claude/allblack/internal/models"
	"github.com/claude/allblack/internal/records"
)

// DataSource abstracts the data layer for MCP tools. Both *dashboard.Dashboard
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListTests(ctx context.Context) ([]models.TestRecord, error)
	TestSummary(ctx context.Context) (*records.Summary, error)
	AddTest(ctx context.Context, in models.TestInput) (*models.TestRecord, error)
	Workouts(ctx context.Context) ([]dashboard.WorkoutDay, error)
	Home(ctx context.Context) (*dashboard.Home, error)
}

// Compile-time check: *dashboard.Dashboard satisfies DataSource.
var _ DataSource = (*dashboard.Dashboard)(nil)
