package likes

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Mosaic/internal/api/handlers"
	"Mosaic/internal/api/middleware"
	"Mosaic/internal/core/identity"
	"Mosaic/internal/core/likes"
)

// CommentLikeHandler handles like operations on comments
type CommentLikeHandler struct {
	service likes.Service
}

// NewCommentLikeHandler creates a new handler for comment likes
func NewCommentLikeHandler(service likes.Service) *CommentLikeHandler {
	return &CommentLikeHandler{service: service}
}

// HandleLike records a like on a comment for the caller.
// POST /api/comments/{id}/like
func (h *CommentLikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, likes.DirectionLike)
}

// HandleUnlike removes the caller's like from a comment, if present.
// DELETE /api/comments/{id}/like
func (h *CommentLikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, likes.DirectionUnlike)
}

func (h *CommentLikeHandler) toggle(w http.ResponseWriter, r *http.Request, direction likes.Direction) {
	commentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "comment id must be numeric")
		return
	}

	principal := identity.Resolve(r, middleware.CurrentUser(r))

	state, err := h.service.ToggleComment(r.Context(), commentID, principal.Fingerprint(), direction)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, state)
}
