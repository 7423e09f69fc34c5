package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/staffer/internal/domain/model"
)

// CatalogDependencies defines the interface for reading the catalog.
type CatalogDependencies interface {
	Project(ctx context.Context, id string) (model.Project, error)
	Projects(ctx context.Context) ([]model.Project, error)
	Employees(ctx context.Context) ([]model.Employee, error)
}

// projectView adds the readable seniority title to a project.
type projectView struct {
	model.Project
	RequiredLevel string `json:"requiredLevel"`
}

// employeeView adds the readable seniority title to an employee.
type employeeView struct {
	model.Employee
	Level string `json:"level"`
}

func newProjectView(p model.Project) projectView {
	return projectView{Project: p, RequiredLevel: model.CLLabel(p.RequiredCL)}
}

// CatalogHandler serves projects and employees.
type CatalogHandler struct {
	deps CatalogDependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps CatalogDependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// HandleProjects handles GET /projects requests.
func (h *CatalogHandler) HandleProjects(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_projects"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	projects, err := h.deps.Projects(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
		return
	}
	out := make([]projectView, len(projects))
	for i, p := range projects {
		out[i] = newProjectView(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleProject handles GET /projects/{id} requests.
func (h *CatalogHandler) HandleProject(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_project"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /projects/
	id := strings.TrimPrefix(r.URL.Path, "/projects/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	p, err := h.deps.Project(r.Context(), id)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, newProjectView(p))
}

// HandleEmployees handles GET /employees requests.
func (h *CatalogHandler) HandleEmployees(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_employees"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	employees, err := h.deps.Employees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
		return
	}
	out := make([]employeeView, len(employees))
	for i, e := range employees {
		out[i] = employeeView{Employee: e, Level: model.CLLabel(e.CL)}
	}
	writeJSON(w, http.StatusOK, out)
}
