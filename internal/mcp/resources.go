package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/allblack/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) testsResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	tests, err := h.ds.ListTests(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, tests)
}

func (h *handlers) zonesResource(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, models.TrainingZones)
}

func (h *handlers) weekResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	week, err := h.ds.Workouts(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, week)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
