package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/allblack/internal/dashboard"
	"github.com/claude/allblack/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	dash    *dashboard.Dashboard
	metrics *metrics.Manager
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured. m may be nil.
func New(dash *dashboard.Dashboard, m *metrics.Manager, log *slog.Logger) *Server {
	s := &Server{
		dash:    dash,
		metrics: m,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handle mounts an extra handler, such as /metrics or /mcp, behind the
// same middleware.
func (s *Server) Handle(pattern string, h http.Handler) {
	s.router.Handle(pattern, h)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(Instrument(s.metrics))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/screens", s.handleScreens)
		r.Get("/home", s.handleHome)

		r.Route("/tests", func(r chi.Router) {
			r.Get("/", s.handleListTests)
			r.Post("/", s.handleCreateTest)
			r.Get("/summary", s.handleTestSummary)
			r.Get("/{id}", s.handleGetTest)
			r.Put("/{id}", s.handleUpdateTest)
			r.Delete("/{id}", s.handleDeleteTest)
		})

		r.Get("/analysis", s.handleAnalysis)

		r.Get("/profile", s.handleProfile)
		r.Put("/profile/name", s.handleSetName)

		r.Get("/workouts", s.handleWorkouts)
		r.Post("/workouts/{id}/toggle", s.handleToggleWorkout)

		r.Get("/gauge", s.handleGauge)
		r.Get("/calc/vo2max", s.handleCalcVO2max)
		r.Get("/calc/pace", s.handleCalcPace)
	})
}
