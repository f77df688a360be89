package postgres

import (
	"Mosaic/internal/core/comments"
	"context"
	"database/sql"
	"fmt"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment into the comments table
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	query := `
		INSERT INTO comments (post_code, user_id, guest_name, parent_id, text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		comment.PostCode, comment.UserID, comment.GuestName, comment.ParentID, comment.Text,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

// GetByID retrieves a single comment by id
func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	query := `
		SELECT id, post_code, user_id, guest_name, parent_id, text, created_at
		FROM comments
		WHERE id = $1
	`

	comment := &comments.Comment{}
	var userID, parentID sql.NullInt64
	var guestName sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PostCode, &userID, &guestName,
		&parentID, &comment.Text, &comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	applyNullables(comment, userID, guestName, parentID)
	return comment, nil
}

// Exists reports whether a comment row exists
func (r *postgresCommentRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check comment existence: %w", err)
	}
	return exists, nil
}

// ListByPost retrieves every comment for a post, oldest first.
// Author name and avatar are hydrated via JOIN for logged-in authors; guest
// comments keep the stored guest name and leave the author fields empty.
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postCode string) ([]*comments.Comment, error) {
	query := `
		SELECT c.id, c.post_code, c.user_id, c.guest_name, c.parent_id, c.text, c.created_at,
		       COALESCE(u.display_name, ''), COALESCE(u.avatar_url, '')
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.post_code = $1
		ORDER BY c.created_at ASC, c.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, postCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*comments.Comment
	for rows.Next() {
		comment := &comments.Comment{}
		var userID, parentID sql.NullInt64
		var guestName sql.NullString

		err := rows.Scan(
			&comment.ID, &comment.PostCode, &userID, &guestName,
			&parentID, &comment.Text, &comment.CreatedAt,
			&comment.AuthorName, &comment.AuthorAvatar,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}

		applyNullables(comment, userID, guestName, parentID)
		result = append(result, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}

// Delete removes a comment. Descendant comments and like rows go with it via
// the schema's ON DELETE CASCADE; absence is not an error.
func (r *postgresCommentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func applyNullables(comment *comments.Comment, userID sql.NullInt64, guestName sql.NullString, parentID sql.NullInt64) {
	if userID.Valid {
		comment.UserID = &userID.Int64
	}
	if guestName.Valid {
		comment.GuestName = &guestName.String
	}
	if parentID.Valid {
		comment.ParentID = &parentID.Int64
	}
}
