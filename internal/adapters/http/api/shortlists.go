package api

import (
	"context"
	"net/http"
)

// ShortlistsDependencies defines the interface for batch staffing.
type ShortlistsDependencies interface {
	StaffAll(ctx context.Context) ([]Shortlist, error)
}

// ShortlistsHandler staffs every project at once.
type ShortlistsHandler struct {
	deps ShortlistsDependencies
}

// NewShortlistsHandler creates a new shortlists handler.
func NewShortlistsHandler(deps ShortlistsDependencies) *ShortlistsHandler {
	return &ShortlistsHandler{deps: deps}
}

// HandleShortlists handles GET /shortlists requests.
func (h *ShortlistsHandler) HandleShortlists(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_shortlists"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	all, err := h.deps.StaffAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", WrapKind(op, ErrInternal, err))
		return
	}
	writeJSON(w, http.StatusOK, all)
}
