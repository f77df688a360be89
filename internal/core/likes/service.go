package likes

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"Mosaic/internal/core/snapshot"
)

// bulkStateLimit caps a single bulk lookup to bound store round-trips.
// Excess codes are dropped in input order, not rejected.
const bulkStateLimit = 100

// Service defines the business logic interface for like operations.
// It reconciles the frozen external snapshot with the mutable local store:
// the snapshot is the write-once baseline from before this system existed,
// the store tracks only the delta since.
type Service interface {
	// GetPostState returns the caller's like state and the combined
	// (external + local) like count for one post
	GetPostState(ctx context.Context, postCode, fingerprint string) (*State, error)

	// GetPostStates is the bulk variant, capped at 100 codes per call
	GetPostStates(ctx context.Context, postCodes []string, fingerprint string) (map[string]*State, error)

	// TogglePost applies a like or unlike and returns the authoritative
	// post-mutation state
	TogglePost(ctx context.Context, postCode, fingerprint string, dir Direction) (*State, error)

	// ToggleComment applies a like or unlike to a comment. Returns
	// ErrCommentNotFound for unknown comment ids.
	ToggleComment(ctx context.Context, commentID int64, fingerprint string, dir Direction) (*State, error)
}

// likeService implements the Service interface
type likeService struct {
	repo     Repository
	comments CommentChecker
	snapshot *snapshot.Snapshot
	logger   *slog.Logger
}

// NewLikeService creates a new like service instance. The snapshot is loaded
// once at startup and treated as immutable.
func NewLikeService(repo Repository, comments CommentChecker, snap *snapshot.Snapshot, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if snap == nil {
		snap = snapshot.Empty()
	}
	return &likeService{
		repo:     repo,
		comments: comments,
		snapshot: snap,
		logger:   logger,
	}
}

// GetPostState computes liked + total for a single post.
// Total is always snapshot baseline plus local count; posts missing from the
// snapshot contribute a zero baseline.
func (s *likeService) GetPostState(ctx context.Context, postCode, fingerprint string) (*State, error) {
	liked, err := s.repo.HasLiked(ctx, KindPost, postCode, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to check like state: %w", err)
	}

	local, err := s.repo.Count(ctx, KindPost, postCode)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &State{
		Liked:      liked,
		TotalLikes: s.snapshot.LikeCount(postCode) + local,
	}, nil
}

// GetPostStates computes like state for up to bulkStateLimit posts in two
// batch queries. Codes beyond the cap are silently dropped, keeping the
// first 100 in input order.
func (s *likeService) GetPostStates(ctx context.Context, postCodes []string, fingerprint string) (map[string]*State, error) {
	if len(postCodes) > bulkStateLimit {
		postCodes = postCodes[:bulkStateLimit]
	}

	result := make(map[string]*State, len(postCodes))
	if len(postCodes) == 0 {
		return result, nil
	}

	counts, err := s.repo.CountByTargets(ctx, KindPost, postCodes)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	liked, err := s.repo.LikedByTargets(ctx, KindPost, postCodes, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to check like state: %w", err)
	}

	for _, code := range postCodes {
		result[code] = &State{
			Liked:      liked[code],
			TotalLikes: s.snapshot.LikeCount(code) + counts[code],
		}
	}

	return result, nil
}

// TogglePost applies the mutation then re-reads the aggregate, so the caller
// always receives the authoritative count instead of a client-side guess.
func (s *likeService) TogglePost(ctx context.Context, postCode, fingerprint string, dir Direction) (*State, error) {
	if err := s.apply(ctx, KindPost, postCode, fingerprint, dir); err != nil {
		return nil, err
	}

	local, err := s.repo.Count(ctx, KindPost, postCode)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	s.logger.Info("post like toggled",
		"postCode", postCode,
		"direction", dir)

	return &State{
		Liked:      dir == DirectionLike,
		TotalLikes: s.snapshot.LikeCount(postCode) + local,
	}, nil
}

// ToggleComment applies the mutation then re-reads the count. Comments have
// no external baseline, so the total is the local count alone.
func (s *likeService) ToggleComment(ctx context.Context, commentID int64, fingerprint string, dir Direction) (*State, error) {
	exists, err := s.comments.Exists(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return nil, ErrCommentNotFound
	}

	target := strconv.FormatInt(commentID, 10)
	if err := s.apply(ctx, KindComment, target, fingerprint, dir); err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, KindComment, target)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	s.logger.Info("comment like toggled",
		"commentID", commentID,
		"direction", dir)

	return &State{
		Liked:      dir == DirectionLike,
		TotalLikes: total,
	}, nil
}

// apply dispatches the store mutation. Both branches are idempotent at the
// repository level: repeats and concurrent duplicates converge to one state.
func (s *likeService) apply(ctx context.Context, kind Kind, targetID, fingerprint string, dir Direction) error {
	switch dir {
	case DirectionLike:
		if err := s.repo.Like(ctx, kind, targetID, fingerprint); err != nil {
			return fmt.Errorf("failed to like %s: %w", kind, err)
		}
	case DirectionUnlike:
		if err := s.repo.Unlike(ctx, kind, targetID, fingerprint); err != nil {
			return fmt.Errorf("failed to unlike %s: %w", kind, err)
		}
	default:
		return ErrInvalidDirection
	}
	return nil
}
