package likes

import "context"

// Repository defines the interface for like record persistence.
//
// Like and Unlike are idempotent by contract: a duplicate insert and a
// missing delete are both no-ops, never errors. The uniqueness of
// (kind, target, fingerprint) must be enforced by the store itself so
// concurrent duplicate requests converge instead of racing.
type Repository interface {
	Like(ctx context.Context, kind Kind, targetID, fingerprint string) error
	Unlike(ctx context.Context, kind Kind, targetID, fingerprint string) error
	Count(ctx context.Context, kind Kind, targetID string) (int, error)
	HasLiked(ctx context.Context, kind Kind, targetID, fingerprint string) (bool, error)

	// CountByTargets returns like counts for many targets of one kind in a
	// single round-trip. Targets with no likes are absent from the map.
	CountByTargets(ctx context.Context, kind Kind, targetIDs []string) (map[string]int, error)

	// LikedByTargets returns the subset of targets the fingerprint has liked.
	LikedByTargets(ctx context.Context, kind Kind, targetIDs []string, fingerprint string) (map[string]bool, error)
}

// CommentChecker is the slice of the comment store the like service needs:
// existence checks so liking an unknown comment can 404.
type CommentChecker interface {
	Exists(ctx context.Context, commentID int64) (bool, error)
}
