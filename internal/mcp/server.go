package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/allblack/internal/metrics"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered. m may
// be nil.
func New(ds DataSource, version string, log *slog.Logger, m *metrics.Manager) *server.MCPServer {
	s := server.NewMCPServer("All Black", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("All Black running performance server. Estimate VO2max and pace from timed tests, "+
			"read and record the athlete's test history, check goal progress and the weekly training plan."),
	)

	h := &handlers{ds: ds, log: log, metrics: m}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolEstimateVO2max, Handler: h.instrument("estimate_vo2max", h.estimateVO2max)},
		server.ServerTool{Tool: toolFormatPace, Handler: h.instrument("format_pace", h.formatPace)},
		server.ServerTool{Tool: toolGoalProgress, Handler: h.instrument("goal_progress", h.goalProgress)},
		server.ServerTool{Tool: toolListTests, Handler: h.instrument("list_tests", h.listTests)},
		server.ServerTool{Tool: toolTestSummary, Handler: h.instrument("test_summary", h.testSummary)},
		server.ServerTool{Tool: toolAddTest, Handler: h.instrument("add_test", h.addTest)},
		server.ServerTool{Tool: toolTrainingZones, Handler: h.instrument("training_zones", h.trainingZones)},
		server.ServerTool{Tool: toolGaugeGeometry, Handler: h.instrument("gauge_geometry", h.gaugeGeometry)},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resTests, Handler: h.testsResource},
		server.ServerResource{Resource: resZones, Handler: h.zonesResource},
		server.ServerResource{Resource: resWeek, Handler: h.weekResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds      DataSource
	log     *slog.Logger
	metrics *metrics.Manager
}

// instrument counts tool calls by outcome.
func (h *handlers) instrument(name string, fn server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := fn(ctx, req)
		if h.metrics != nil {
			result := "ok"
			if err != nil || (res != nil && res.IsError) {
				result = "error"
			}
			h.metrics.CounterToolCalls.WithLabelValues(name, result).Inc()
		}
		return res, err
	}
}

// --- Resource definitions ---

var resTests = mcp.NewResource(
	"allblack://tests",
	"Test History",
	mcp.WithResourceDescription("All recorded running tests, newest first, with pace and VO2max"),
	mcp.WithMIMEType("application/json"),
)

var resZones = mcp.NewResource(
	"allblack://zones",
	"Training Zones",
	mcp.WithResourceDescription("The five heart-rate training zones with their pace ranges"),
	mcp.WithMIMEType("application/json"),
)

var resWeek = mcp.NewResource(
	"allblack://week",
	"Weekly Plan",
	mcp.WithResourceDescription("This week's training plan, Monday to Sunday, with completion flags"),
	mcp.WithMIMEType("application/json"),
)
