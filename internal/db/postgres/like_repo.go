package postgres

import (
	"Mosaic/internal/core/likes"
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/lib/pq"
)

// LikeRepo is the PostgreSQL like repository. It backs both the likes
// service (likes.Repository) and the comment thread builder
// (comments.LikeCounter).
type LikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) *LikeRepo {
	return &LikeRepo{db: db}
}

// Like inserts a like record. ON CONFLICT DO NOTHING makes duplicate clicks
// and retries converge at the constraint instead of racing in app code.
func (r *LikeRepo) Like(ctx context.Context, kind likes.Kind, targetID, fingerprint string) error {
	switch kind {
	case likes.KindPost:
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO post_likes (post_code, fingerprint)
			VALUES ($1, $2)
			ON CONFLICT (post_code, fingerprint) DO NOTHING
		`, targetID, fingerprint)
		if err != nil {
			return fmt.Errorf("failed to insert post like: %w", err)
		}
	case likes.KindComment:
		commentID, err := parseCommentID(targetID)
		if err != nil {
			return err
		}
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO comment_likes (comment_id, fingerprint)
			VALUES ($1, $2)
			ON CONFLICT (comment_id, fingerprint) DO NOTHING
		`, commentID, fingerprint)
		if err != nil {
			return fmt.Errorf("failed to insert comment like: %w", err)
		}
	default:
		return fmt.Errorf("unknown like kind: %s", kind)
	}
	return nil
}

// Unlike deletes a like record if present. Absence is a no-op.
func (r *LikeRepo) Unlike(ctx context.Context, kind likes.Kind, targetID, fingerprint string) error {
	switch kind {
	case likes.KindPost:
		_, err := r.db.ExecContext(ctx,
			`DELETE FROM post_likes WHERE post_code = $1 AND fingerprint = $2`,
			targetID, fingerprint)
		if err != nil {
			return fmt.Errorf("failed to delete post like: %w", err)
		}
	case likes.KindComment:
		commentID, err := parseCommentID(targetID)
		if err != nil {
			return err
		}
		_, err = r.db.ExecContext(ctx,
			`DELETE FROM comment_likes WHERE comment_id = $1 AND fingerprint = $2`,
			commentID, fingerprint)
		if err != nil {
			return fmt.Errorf("failed to delete comment like: %w", err)
		}
	default:
		return fmt.Errorf("unknown like kind: %s", kind)
	}
	return nil
}

// Count returns the number of like records for one target
func (r *LikeRepo) Count(ctx context.Context, kind likes.Kind, targetID string) (int, error) {
	var query string
	var arg interface{} = targetID

	switch kind {
	case likes.KindPost:
		query = `SELECT COUNT(*) FROM post_likes WHERE post_code = $1`
	case likes.KindComment:
		commentID, err := parseCommentID(targetID)
		if err != nil {
			return 0, err
		}
		query = `SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1`
		arg = commentID
	default:
		return 0, fmt.Errorf("unknown like kind: %s", kind)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// HasLiked reports whether the fingerprint currently likes the target
func (r *LikeRepo) HasLiked(ctx context.Context, kind likes.Kind, targetID, fingerprint string) (bool, error) {
	var query string
	var arg interface{} = targetID

	switch kind {
	case likes.KindPost:
		query = `SELECT EXISTS (SELECT 1 FROM post_likes WHERE post_code = $1 AND fingerprint = $2)`
	case likes.KindComment:
		commentID, err := parseCommentID(targetID)
		if err != nil {
			return false, err
		}
		query = `SELECT EXISTS (SELECT 1 FROM comment_likes WHERE comment_id = $1 AND fingerprint = $2)`
		arg = commentID
	default:
		return false, fmt.Errorf("unknown like kind: %s", kind)
	}

	var liked bool
	if err := r.db.QueryRowContext(ctx, query, arg, fingerprint).Scan(&liked); err != nil {
		return false, fmt.Errorf("failed to check like state: %w", err)
	}
	return liked, nil
}

// CountByTargets returns like counts for many targets in one query.
// Targets with no likes are absent from the result map.
func (r *LikeRepo) CountByTargets(ctx context.Context, kind likes.Kind, targetIDs []string) (map[string]int, error) {
	result := make(map[string]int, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	switch kind {
	case likes.KindPost:
		rows, err := r.db.QueryContext(ctx, `
			SELECT post_code, COUNT(*)
			FROM post_likes
			WHERE post_code = ANY($1)
			GROUP BY post_code
		`, pq.Array(targetIDs))
		if err != nil {
			return nil, fmt.Errorf("failed to count post likes: %w", err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var code string
			var count int
			if err := rows.Scan(&code, &count); err != nil {
				return nil, fmt.Errorf("failed to scan like count: %w", err)
			}
			result[code] = count
		}
		return result, rows.Err()

	case likes.KindComment:
		ids, err := parseCommentIDs(targetIDs)
		if err != nil {
			return nil, err
		}
		counts, err := r.CountByComments(ctx, ids)
		if err != nil {
			return nil, err
		}
		for id, count := range counts {
			result[strconv.FormatInt(id, 10)] = count
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unknown like kind: %s", kind)
	}
}

// LikedByTargets returns the subset of targets the fingerprint has liked
func (r *LikeRepo) LikedByTargets(ctx context.Context, kind likes.Kind, targetIDs []string, fingerprint string) (map[string]bool, error) {
	result := make(map[string]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	switch kind {
	case likes.KindPost:
		rows, err := r.db.QueryContext(ctx, `
			SELECT post_code
			FROM post_likes
			WHERE post_code = ANY($1) AND fingerprint = $2
		`, pq.Array(targetIDs), fingerprint)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch liked posts: %w", err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var code string
			if err := rows.Scan(&code); err != nil {
				return nil, fmt.Errorf("failed to scan liked post: %w", err)
			}
			result[code] = true
		}
		return result, rows.Err()

	case likes.KindComment:
		ids, err := parseCommentIDs(targetIDs)
		if err != nil {
			return nil, err
		}
		likedSet, err := r.LikedByComments(ctx, ids, fingerprint)
		if err != nil {
			return nil, err
		}
		for id := range likedSet {
			result[strconv.FormatInt(id, 10)] = true
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unknown like kind: %s", kind)
	}
}

// CountByComments returns like counts keyed by comment id.
// Used by the thread builder to enrich a whole comment list in one query.
func (r *LikeRepo) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int, error) {
	result := make(map[int64]int, len(commentIDs))
	if len(commentIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT comment_id, COUNT(*)
		FROM comment_likes
		WHERE comment_id = ANY($1)
		GROUP BY comment_id
	`, pq.Array(commentIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to count comment likes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id int64
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan comment like count: %w", err)
		}
		result[id] = count
	}
	return result, rows.Err()
}

// LikedByComments returns the set of comment ids the fingerprint has liked
func (r *LikeRepo) LikedByComments(ctx context.Context, commentIDs []int64, fingerprint string) (map[int64]bool, error) {
	result := make(map[int64]bool, len(commentIDs))
	if len(commentIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT comment_id
		FROM comment_likes
		WHERE comment_id = ANY($1) AND fingerprint = $2
	`, pq.Array(commentIDs), fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch liked comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan liked comment: %w", err)
		}
		result[id] = true
	}
	return result, rows.Err()
}

func parseCommentID(targetID string) (int64, error) {
	id, err := strconv.ParseInt(targetID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid comment id %q: %w", targetID, err)
	}
	return id, nil
}

func parseCommentIDs(targetIDs []string) ([]int64, error) {
	ids := make([]int64, 0, len(targetIDs))
	for _, t := range targetIDs {
		id, err := parseCommentID(t)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
