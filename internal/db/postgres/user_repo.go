package postgres

import (
	"Mosaic/internal/core/users"
	"context"
	"database/sql"
	"fmt"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// Upsert inserts or refreshes a user keyed on the provider's external id.
// Profile fields are overwritten on conflict so the row always mirrors the
// latest login payload.
func (r *postgresUserRepo) Upsert(ctx context.Context, req users.UpsertUserRequest) (*users.User, error) {
	query := `
		INSERT INTO users (external_id, email, display_name, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (external_id) DO UPDATE
		SET email = EXCLUDED.email,
		    display_name = EXCLUDED.display_name,
		    avatar_url = EXCLUDED.avatar_url
		RETURNING id, external_id, email, display_name, avatar_url, created_at
	`

	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query,
		req.ExternalID, req.Email, req.DisplayName, req.AvatarURL,
	).Scan(&user.ID, &user.ExternalID, &user.Email, &user.DisplayName, &user.AvatarURL, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by local id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `
		SELECT id, external_id, email, display_name, avatar_url, created_at
		FROM users
		WHERE id = $1
	`

	user := &users.User{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.ExternalID, &user.Email, &user.DisplayName, &user.AvatarURL, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
