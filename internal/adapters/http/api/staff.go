package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// maxStaffBody bounds the POST /staff request body.
const maxStaffBody = 1 << 20

// StaffDependencies defines the interface for staffing a single project.
type StaffDependencies interface {
	Staff(ctx context.Context, projectID string, demo bool) (Shortlist, error)
}

// staffRequest is the body of POST /staff.
type staffRequest struct {
	ProjectID string `json:"projectId"`
	DemoMode  bool   `json:"demoMode"`
}

func (r staffRequest) validate() error {
	if strings.TrimSpace(r.ProjectID) == "" {
		return errors.New("missing projectId")
	}
	return nil
}

// staffResponse is the body of a successful POST /staff.
type staffResponse struct {
	Success bool `json:"success"`
	Shortlist
}

// StaffHandler handles staffing requests.
type StaffHandler struct {
	deps StaffDependencies
}

// NewStaffHandler creates a new staff handler.
func NewStaffHandler(deps StaffDependencies) *StaffHandler {
	return &StaffHandler{deps: deps}
}

// HandleStaff handles POST /staff requests.
func (h *StaffHandler) HandleStaff(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_staff"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req staffRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxStaffBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	s, err := h.deps.Staff(r.Context(), strings.TrimSpace(req.ProjectID), req.DemoMode)
	if err != nil {
		writeLookupError(w, op, err)
		return
	}

	if s.Empty() {
		writeJSON(w, http.StatusBadRequest, noCandidatesResponse{
			errorResponse: errorResponse{Code: "no_candidates", Message: NewKind(op, ErrNoCandidates).Error()},
			Error:         "No suitable candidates found",
			Project:       s.Project,
			Candidates:    s.Candidates,
		})
		return
	}

	writeJSON(w, http.StatusOK, staffResponse{Success: true, Shortlist: s})
}
