package likes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"Mosaic/internal/api/handlers"
	"Mosaic/internal/api/middleware"
	"Mosaic/internal/core/identity"
	"Mosaic/internal/core/likes"
)

// PostLikeHandler handles like operations on catalog posts
type PostLikeHandler struct {
	service likes.Service
}

// NewPostLikeHandler creates a new handler for post likes
func NewPostLikeHandler(service likes.Service) *PostLikeHandler {
	return &PostLikeHandler{service: service}
}

// HandleLike records a like on a post for the caller. Repeat likes from the
// same caller are no-ops.
// POST /api/posts/{code}/like
func (h *PostLikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, likes.DirectionLike)
}

// HandleUnlike removes the caller's like from a post, if present.
// DELETE /api/posts/{code}/like
func (h *PostLikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, likes.DirectionUnlike)
}

func (h *PostLikeHandler) toggle(w http.ResponseWriter, r *http.Request, direction likes.Direction) {
	code := chi.URLParam(r, "code")
	if code == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "post code is required")
		return
	}

	principal := identity.Resolve(r, middleware.CurrentUser(r))

	state, err := h.service.TogglePost(r.Context(), code, principal.Fingerprint(), direction)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, state)
}

// HandleGetState returns the like state of a single post for the caller.
// GET /api/posts/{code}/likes
func (h *PostLikeHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "post code is required")
		return
	}

	principal := identity.Resolve(r, middleware.CurrentUser(r))

	state, err := h.service.GetPostState(r.Context(), code, principal.Fingerprint())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, state)
}

// HandleBulkState returns like state for a batch of posts in one round trip.
// A missing or empty codes parameter yields an empty mapping, not an error.
// GET /api/posts/likes?codes=a,b,c
func (h *PostLikeHandler) HandleBulkState(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("codes")

	var codes []string
	for _, code := range strings.Split(raw, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			codes = append(codes, code)
		}
	}

	principal := identity.Resolve(r, middleware.CurrentUser(r))

	states, err := h.service.GetPostStates(r.Context(), codes, principal.Fingerprint())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, states)
}
