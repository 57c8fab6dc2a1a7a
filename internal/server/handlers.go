package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/claude/allblack/internal/calc"
	"github.com/claude/allblack/internal/chart"
	"github.com/claude/allblack/internal/dashboard"
	"github.com/claude/allblack/internal/models"
	"github.com/claude/allblack/internal/records"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleScreens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"screens": models.Screens,
		"actions": []models.Action{models.RecordTestAction},
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	home, err := s.dash.Home(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, home)
}

func (s *Server) handleListTests(w http.ResponseWriter, r *http.Request) {
	tests, err := s.dash.ListTests(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tests)
}

func (s *Server) handleCreateTest(w http.ResponseWriter, r *http.Request) {
	var in models.TestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	rec, err := s.dash.AddTest(r.Context(), in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleTestSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := s.dash.TestSummary(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":       sum.Count,
		"best_vo2max": sum.BestVO2max,
		"display":     sum.Display(),
	})
}

func (s *Server) handleGetTest(w http.ResponseWriter, r *http.Request) {
	rec, err := s.dash.GetTest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleUpdateTest(w http.ResponseWriter, r *http.Request) {
	var in models.TestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	rec, err := s.dash.UpdateTest(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteTest(w http.ResponseWriter, r *http.Request) {
	if err := s.dash.RemoveTest(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	v := dashboard.DefaultViewport
	var err error
	q := r.URL.Query()
	if v.Width, err = floatParam(q.Get("width"), v.Width); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid width"})
		return
	}
	if v.Height, err = floatParam(q.Get("height"), v.Height); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid height"})
		return
	}
	if v.Padding, err = floatParam(q.Get("padding"), v.Padding); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid padding"})
		return
	}

	a, err := s.dash.Analysis(r.Context(), v)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.dash.Profile(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSetName(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	name, err := s.dash.SetName(r.Context(), body.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	week, err := s.dash.Workouts(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, week)
}

func (s *Server) handleToggleWorkout(w http.ResponseWriter, r *http.Request) {
	day, err := s.dash.ToggleWorkout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleGauge(w http.ResponseWriter, r *http.Request) {
	value, err := floatParam(r.URL.Query().Get("value"), 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid value"})
		return
	}
	size, err := floatParam(r.URL.Query().Get("size"), chart.DefaultGaugeSize)
	if err != nil || size <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid size"})
		return
	}
	writeJSON(w, http.StatusOK, chart.NewGauge(value, size))
}

func (s *Server) handleCalcVO2max(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weight, err := floatParam(strings.ReplaceAll(q.Get("weight"), ",", "."), 0)
	if err != nil || weight <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weight must be a positive number"})
		return
	}
	distance := q.Get("distance")
	if distance == "" {
		distance = calc.DefaultDistance
	}
	if _, err := calc.ParseDuration(q.Get("time")); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	vo2, err := calc.EstimateVO2max(distance, q.Get("time"), weight)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"distance": distance,
		"time":     q.Get("time"),
		"weight":   weight,
		"vo2max":   vo2,
	})
}

func (s *Server) handleCalcPace(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	distance := q.Get("distance")
	if distance == "" {
		distance = calc.DefaultDistance
	}
	km, err := calc.ReferenceKm(distance)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	elapsed, err := calc.ParseDuration(q.Get("time"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	pace := calc.PaceSecondsPerKm(elapsed, km)
	writeJSON(w, http.StatusOK, map[string]any{
		"distance":            distance,
		"elapsed_seconds":     elapsed,
		"duration":            calc.FormatDuration(elapsed),
		"pace_seconds_per_km": pace,
		"pace":                calc.FormatPace(pace) + "/km",
	})
}

// writeError maps domain errors to status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var ve *records.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": ve.Error(), "fields": ve.Fields})
	case errors.Is(err, records.ErrNotFound), errors.Is(err, dashboard.ErrUnknownWorkout):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// floatParam parses a finite number, returning def for an empty string.
func floatParam(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
