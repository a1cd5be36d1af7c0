// Package http exposes a fitted applier over a JSON API.
//
// The server is deliberately small: one transform route speaking the
// tableio JSON envelope, the frozen plan for introspection, a health
// probe and optionally Prometheus metrics. Fitting happens before the
// server starts; no route mutates the applier.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/logging"
	"github.com/aretw0/graft/internal/tableio"
	"github.com/aretw0/graft/pkg/domain"
)

// Applier is the slice of graft.Applier the server depends on.
type Applier interface {
	Transform(tbl domain.Table) (domain.Table, error)
	Record() (*domain.FitRecord, error)
}

var _ Applier = (*graft.Applier)(nil)

// Server handles the JSON API over a fitted applier.
type Server struct {
	applier Applier
	logger  *slog.Logger
	metrics prometheus.Gatherer
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger (default: no-op).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics mounts GET /metrics for the given gatherer.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = g
	}
}

// NewHandler creates the HTTP handler for a fitted applier.
func NewHandler(app Applier, opts ...Option) http.Handler {
	s := &Server{applier: app}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Get("/health", s.health)
	r.Get("/v1/record", s.record)
	r.Post("/v1/transform", s.transform)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": graft.Version,
	})
}

// record returns the plan frozen by the fit that preceded serving.
func (s *Server) record(w http.ResponseWriter, r *http.Request) {
	rec, err := s.applier.Record()
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// transform applies the frozen plan to the posted table.
func (s *Server) transform(w http.ResponseWriter, r *http.Request) {
	in, err := tableio.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	out, err := s.applier.Transform(in)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	jt, err := tableio.ToJSONTable(out)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, jt)
}

// statusFor maps applier errors to response codes: a server that was
// never fitted is unavailable, a table the plan cannot be replayed on is
// the client's problem.
func statusFor(err error) int {
	var colErr *domain.ColumnNotFoundError
	var unsupported *domain.UnsupportedTableError
	switch {
	case errors.Is(err, domain.ErrNotFitted):
		return http.StatusServiceUnavailable
	case errors.As(err, &colErr), errors.As(err, &unsupported):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	s.logger.Error("request failed", "status", code, "error", err)
	s.writeJSON(w, code, map[string]string{"error": err.Error()})
}
