package comments

import (
	"errors"
	"log"
	"net/http"

	"Mosaic/internal/api/handlers"
	"Mosaic/internal/core/comments"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var ve *comments.ValidationError
	switch {
	case errors.As(err, &ve):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", ve.Reason)
	case errors.Is(err, comments.ErrCommentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	default:
		// Store failures stay opaque to the caller
		log.Printf("Comment error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Internal server error")
	}
}
