package comments

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Mosaic/internal/api/handlers"
	"Mosaic/internal/api/middleware"
	"Mosaic/internal/core/comments"
	"Mosaic/internal/core/identity"
)

// CreateCommentHandler handles comment creation requests
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new handler for creating comments
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// CreateCommentInput is the request body for comment creation
type CreateCommentInput struct {
	Text      string `json:"text"`
	GuestName string `json:"guest_name"`
	ParentID  *int64 `json:"parent_id"`
}

// HandleCreate creates a comment or reply on a post.
// POST /api/posts/{code}/comments
//
// Request body: { "text": "...", "guest_name": "...", "parent_id": 123 }
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "post code is required")
		return
	}

	// Bound the body well above the 2000-char text limit
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	principal := identity.Resolve(r, middleware.CurrentUser(r))

	view, err := h.service.CreateComment(r.Context(), principal, comments.CreateCommentRequest{
		PostCode:  code,
		Text:      input.Text,
		GuestName: input.GuestName,
		ParentID:  input.ParentID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, view)
}
