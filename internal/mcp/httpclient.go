package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/allblack/internal/dashboard"
	"github.com/claude/allblack/internal/models"
	"github.com/claude/allblack/internal/records"
)

// HTTPClient implements DataSource by calling the All Black REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the server.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, bytes.TrimSpace(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("httpclient: decode %s: %w", path, err)
		}
	}
	return nil
}

func (c *HTTPClient) ListTests(ctx context.Context) ([]models.TestRecord, error) {
	var tests []models.TestRecord
	if err := c.do(ctx, http.MethodGet, "/api/v1/tests", nil, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

func (c *HTTPClient) TestSummary(ctx context.Context) (*records.Summary, error) {
	var sum records.Summary
	if err := c.do(ctx, http.MethodGet, "/api/v1/tests/summary", nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

func (c *HTTPClient) AddTest(ctx context.Context, in models.TestInput) (*models.TestRecord, error) {
	var rec models.TestRecord
	if err := c.do(ctx, http.MethodPost, "/api/v1/tests", in, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) Workouts(ctx context.Context) ([]dashboard.WorkoutDay, error) {
	var week []dashboard.WorkoutDay
	if err := c.do(ctx, http.MethodGet, "/api/v1/workouts", nil, &week); err != nil {
		return nil, err
	}
	return week, nil
}

func (c *HTTPClient) Home(ctx context.Context) (*dashboard.Home, error) {
	var home dashboard.Home
	if err := c.do(ctx, http.MethodGet, "/api/v1/home", nil, &home); err != nil {
		return nil, err
	}
	return &home, nil
}
