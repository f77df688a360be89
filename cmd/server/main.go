package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Mosaic/internal/api/middleware"
	"Mosaic/internal/api/routes"
	"Mosaic/internal/config"
	"Mosaic/internal/core/comments"
	"Mosaic/internal/core/likes"
	"Mosaic/internal/core/snapshot"
	"Mosaic/internal/core/users"
	postgresRepo "Mosaic/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to engagement database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	// External like counts come from a one-time catalog export. A missing
	// or unreadable file is not fatal; totals just start from zero.
	snap, err := snapshot.Load(cfg.SnapshotPath)
	if err != nil {
		logger.Warn("catalog snapshot unavailable, external counts default to zero",
			"path", cfg.SnapshotPath, "error", err)
		snap = snapshot.Empty()
	} else {
		logger.Info("catalog snapshot loaded", "path", cfg.SnapshotPath, "posts", snap.Len())
	}

	// Initialize repositories and services
	userRepo := postgresRepo.NewUserRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	likeRepo := postgresRepo.NewLikeRepository(db)

	userService := users.NewUserService(userRepo, logger)
	commentService := comments.NewCommentService(commentRepo, likeRepo, logger)
	likeService := likes.NewLikeService(likeRepo, commentRepo, snap, logger)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Session resolution is best effort; anonymous callers proceed
	sessionAuth := middleware.NewSessionAuth(cfg.SessionSecret, userService)
	r.Use(sessionAuth.Resolve)

	// Separate write quotas: comments are costlier than likes
	commentLimiter := middleware.NewRateLimiter(10, 1*time.Minute)
	likeLimiter := middleware.NewRateLimiter(30, 1*time.Minute)

	routes.RegisterCommentRoutes(r, commentService, commentLimiter)
	routes.RegisterLikeRoutes(r, likeService, likeLimiter)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Mosaic engagement service starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
