// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	repository "github.com/okian/staffer/internal/adapters/repository"
	"github.com/okian/staffer/internal/domain/model"
	"github.com/okian/staffer/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	StaffDependencies
	CatalogDependencies
	ShortlistsDependencies
}

// Shortlist mirrors the result of staffing one project.
type Shortlist = types.Shortlist

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	staffHandler      *StaffHandler
	catalogHandler    *CatalogHandler
	shortlistsHandler *ShortlistsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		staffHandler:      NewStaffHandler(deps),
		catalogHandler:    NewCatalogHandler(deps),
		shortlistsHandler: NewShortlistsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}

	// Specific paths first (most specific to least specific)
	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/metrics", "metrics", s.healthHandler.HandleHealth)
	route("/stats", "stats", s.statsHandler.HandleStats)
	route("/staff", "staff", s.staffHandler.HandleStaff)
	route("/shortlists", "shortlists", s.shortlistsHandler.HandleShortlists)
	route("/projects", "projects", s.catalogHandler.HandleProjects)
	route("/projects/", "project", s.catalogHandler.HandleProject)
	route("/employees", "employees", s.catalogHandler.HandleEmployees)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// noCandidatesResponse is returned when every employee fails the filters.
type noCandidatesResponse struct {
	errorResponse
	Error      string                  `json:"error"`
	Project    model.Project           `json:"project"`
	Candidates []model.ScoredCandidate `json:"candidates"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeLookupError maps a catalog error to 404 or 500.
func writeLookupError(w http.ResponseWriter, op string, err error) {
	if isNotFound(err) {
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
}

// isNotFound allows the API to translate upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
