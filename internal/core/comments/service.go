package comments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"Mosaic/internal/core/identity"
)

// Service defines the business logic interface for comment operations
type Service interface {
	// GetThread retrieves the full comment tree for a post, enriched with
	// per-comment like counts and the caller's liked flags
	GetThread(ctx context.Context, postCode string, fingerprint string) (*ThreadResponse, error)

	// CreateComment validates, sanitizes and stores a new comment or reply
	CreateComment(ctx context.Context, principal identity.Principal, req CreateCommentRequest) (*CommentView, error)
}

// commentService implements the Service interface
type commentService struct {
	repo   Repository
	likes  LikeCounter
	logger *slog.Logger
}

// NewCommentService creates a new comment service instance
func NewCommentService(repo Repository, likes LikeCounter, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:   repo,
		likes:  likes,
		logger: logger,
	}
}

// GetThread loads the flat, creation-ordered comment list for a post and
// reconstructs the reply tree in one pass.
//
// Like counts and the caller's liked set are fetched as two batch queries up
// front rather than per comment. Each comment whose parent resolves within
// the result set hangs off that parent's Replies; anything else - including
// a row whose parent chain was broken by a cascade delete - surfaces as
// top-level rather than being dropped.
func (s *commentService) GetThread(ctx context.Context, postCode string, fingerprint string) (*ThreadResponse, error) {
	rows, err := s.repo.ListByPost(ctx, postCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	ids := make([]int64, 0, len(rows))
	for _, c := range rows {
		ids = append(ids, c.ID)
	}

	counts := map[int64]int{}
	liked := map[int64]bool{}
	if len(ids) > 0 {
		counts, err = s.likes.CountByComments(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to count comment likes: %w", err)
		}
		liked, err = s.likes.LikedByComments(ctx, ids, fingerprint)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch liked state: %w", err)
		}
	}

	byID := make(map[int64]*CommentView, len(rows))
	views := make([]*CommentView, 0, len(rows))
	for _, c := range rows {
		view := buildView(c, counts[c.ID], liked[c.ID])
		byID[c.ID] = view
		views = append(views, view)
	}

	// Second pass preserves creation order within each Replies list
	topLevel := make([]*CommentView, 0, len(views))
	for _, view := range views {
		if view.ParentID != nil {
			if parent, ok := byID[*view.ParentID]; ok {
				parent.Replies = append(parent.Replies, view)
				continue
			}
		}
		topLevel = append(topLevel, view)
	}

	return &ThreadResponse{
		Comments: topLevel,
		Total:    countNodes(topLevel),
	}, nil
}

// CreateComment validates and stores a new comment.
// Guests must supply a display name; authenticated callers are attributed by
// account and any guest name in the request is ignored.
func (s *commentService) CreateComment(ctx context.Context, principal identity.Principal, req CreateCommentRequest) (*CommentView, error) {
	text, err := CleanText(req.Text)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		PostCode: req.PostCode,
		Text:     text,
	}

	if principal.Authenticated() {
		comment.UserID = &principal.User.ID
		comment.AuthorName = principal.User.DisplayName
		comment.AuthorAvatar = principal.User.AvatarURL
	} else {
		guestName, err := CleanGuestName(req.GuestName)
		if err != nil {
			return nil, err
		}
		comment.GuestName = &guestName
	}

	// A reply's parent must exist and belong to the same post. Checked here
	// at write time: the FK alone can't see across post codes. Only a missing
	// or mismatched parent is the caller's fault; a store failure is not.
	if req.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *req.ParentID)
		if errors.Is(err, ErrCommentNotFound) {
			return nil, &ValidationError{Field: "parent_id", Reason: "invalid parent_id"}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load parent comment: %w", err)
		}
		if parent.PostCode != req.PostCode {
			return nil, &ValidationError{Field: "parent_id", Reason: "invalid parent_id"}
		}
		comment.ParentID = req.ParentID
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created",
		"commentID", created.ID,
		"postCode", created.PostCode,
		"reply", created.ParentID != nil,
		"guest", created.GuestName != nil)

	return buildView(created, 0, false), nil
}

// buildView converts a Comment entity to a CommentView
func buildView(c *Comment, likeCount int, likedByMe bool) *CommentView {
	var author *AuthorView
	if c.UserID != nil {
		author = &AuthorView{
			Name:      c.AuthorName,
			AvatarURL: c.AuthorAvatar,
		}
	}

	return &CommentView{
		ID:        c.ID,
		PostCode:  c.PostCode,
		User:      author,
		GuestName: c.GuestName,
		ParentID:  c.ParentID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		Likes:     likeCount,
		LikedByMe: likedByMe,
		Replies:   []*CommentView{},
	}
}

// countNodes walks the tree and counts every comment, replies included
func countNodes(views []*CommentView) int {
	total := 0
	for _, v := range views {
		total += 1 + countNodes(v.Replies)
	}
	return total
}
