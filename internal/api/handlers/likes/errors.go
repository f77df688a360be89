package likes

import (
	"errors"
	"log"
	"net/http"

	"Mosaic/internal/api/handlers"
	"Mosaic/internal/core/likes"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, likes.ErrCommentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case errors.Is(err, likes.ErrInvalidDirection):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid like direction")
	default:
		log.Printf("Like error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Internal server error")
	}
}
