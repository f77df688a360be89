package routes

import (
	"github.com/go-chi/chi/v5"

	likeHandlers "Mosaic/internal/api/handlers/likes"
	"Mosaic/internal/api/middleware"
	"Mosaic/internal/core/likes"
)

// RegisterLikeRoutes sets up like routes for posts and comments.
// Mutations go through the like rate limiter; state reads are unthrottled.
func RegisterLikeRoutes(r chi.Router, service likes.Service, limiter *middleware.RateLimiter) {
	postHandler := likeHandlers.NewPostLikeHandler(service)
	commentHandler := likeHandlers.NewCommentLikeHandler(service)

	r.Get("/api/posts/likes", postHandler.HandleBulkState)
	r.Get("/api/posts/{code}/likes", postHandler.HandleGetState)
	r.With(limiter.Middleware).Post("/api/posts/{code}/like", postHandler.HandleLike)
	r.With(limiter.Middleware).Delete("/api/posts/{code}/like", postHandler.HandleUnlike)

	r.With(limiter.Middleware).Post("/api/comments/{id}/like", commentHandler.HandleLike)
	r.With(limiter.Middleware).Delete("/api/comments/{id}/like", commentHandler.HandleUnlike)
}
