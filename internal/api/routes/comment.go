package routes

import (
	"github.com/go-chi/chi/v5"

	commentHandlers "Mosaic/internal/api/handlers/comments"
	"Mosaic/internal/api/middleware"
	"Mosaic/internal/core/comments"
)

// RegisterCommentRoutes sets up comment thread routes.
// Writes go through the comment rate limiter; reads are unthrottled.
func RegisterCommentRoutes(r chi.Router, service comments.Service, limiter *middleware.RateLimiter) {
	getHandler := commentHandlers.NewGetCommentsHandler(service)
	createHandler := commentHandlers.NewCreateCommentHandler(service)

	r.Get("/api/posts/{code}/comments", getHandler.HandleGet)
	r.With(limiter.Middleware).Post("/api/posts/{code}/comments", createHandler.HandleCreate)
}
