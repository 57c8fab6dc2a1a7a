package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/allblack/internal/dashboard"
	"github.com/claude/allblack/internal/kv"
	"github.com/claude/allblack/internal/logging"
	"github.com/claude/allblack/internal/models"
	"github.com/claude/allblack/internal/prefs"
	"github.com/claude/allblack/internal/records"
	"github.com/claude/allblack/internal/server"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and methods.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.Method+" "+r.URL.Path]
		if !ok {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestListTestsClient verifies the JSON array response is parsed.
func TestListTestsClient(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/tests": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, http.StatusOK, []models.TestRecord{{ID: "1", Distance: "10k", VO2max: 58.5}})
		},
	})
	defer ts.Close()

	tests, err := NewHTTPClient(ts.URL + "/").ListTests(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tests) != 1 || tests[0].VO2max != 58.5 {
		t.Errorf("tests = %+v, want one test with 58.5", tests)
	}
}

// TestAddTestClient verifies the form is posted as JSON and a 201 is accepted.
func TestAddTestClient(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/tests": func(w http.ResponseWriter, r *http.Request) {
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content-type = %q, want application/json", ct)
			}
			var in models.TestInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				t.Fatal(err)
			}
			if in.Time != "23:15" {
				t.Errorf("time = %q, want 23:15", in.Time)
			}
			writeTestJSON(t, w, http.StatusCreated, models.TestRecord{ID: "new", Time: in.Time})
		},
	})
	defer ts.Close()

	rec, err := NewHTTPClient(ts.URL).AddTest(context.Background(), models.TestInput{Distance: "5k", Time: "23:15", Date: "d", Weight: "73"})
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "new" {
		t.Errorf("id = %q, want new", rec.ID)
	}
}

// TestClientErrorStatus verifies non-2xx responses become errors carrying
// the server's message.
func TestClientErrorStatus(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/tests": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, http.StatusBadRequest, map[string]any{"error": "missing required fields: date", "fields": []string{"date"}})
		},
	})
	defer ts.Close()

	_, err := NewHTTPClient(ts.URL).AddTest(context.Background(), models.TestInput{Time: "20:00"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "400") || !strings.Contains(err.Error(), "missing required fields") {
		t.Errorf("err = %v, want status and message", err)
	}
}

// TestClientAgainstServer runs the client against the real HTTP API so the
// two stay in agreement on paths and payloads.
func TestClientAgainstServer(t *testing.T) {
	tests := records.NewStore()
	if err := tests.Seed(); err != nil {
		t.Fatal(err)
	}
	p := prefs.New(kv.NewMemory(), prefs.WithLogger(logging.Discard()))
	defer p.Close()

	ts := httptest.NewServer(server.New(dashboard.New(tests, p, nil), nil, logging.Discard()))
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	ctx := context.Background()

	sum, err := client.TestSummary(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Count != 3 || sum.BestVO2max == nil || *sum.BestVO2max != 58.5 {
		t.Errorf("summary = %+v, want 3 tests best 58.5", sum)
	}

	week, err := client.Workouts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(week) != 7 || week[0].ID != "mon" {
		t.Errorf("week = %+v, want 7 days from mon", week)
	}

	home, err := client.Home(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if home.LatestTest == nil || home.LatestTest.Distance != "10k" {
		t.Errorf("latest = %+v, want the 10k test", home.LatestTest)
	}
}
