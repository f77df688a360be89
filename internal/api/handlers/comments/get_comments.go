package comments

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Mosaic/internal/api/handlers"
	"Mosaic/internal/api/middleware"
	"Mosaic/internal/core/comments"
	"Mosaic/internal/core/identity"
)

// GetCommentsHandler handles comment thread reads
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new handler for reading comment threads
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{service: service}
}

// HandleGet returns the nested comment tree for a post, with per-comment
// like counts and the caller's liked flags.
// GET /api/posts/{code}/comments
func (h *GetCommentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "post code is required")
		return
	}

	principal := identity.Resolve(r, middleware.CurrentUser(r))

	thread, err := h.service.GetThread(r.Context(), code, principal.Fingerprint())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, thread)
}
