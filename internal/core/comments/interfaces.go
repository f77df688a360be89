package comments

import "context"

// Repository defines the interface for comment data persistence
type Repository interface {
	// Create inserts a comment and returns it with ID and CreatedAt set.
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	// GetByID retrieves a single comment. Returns ErrCommentNotFound when the
	// row does not exist.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Exists reports whether a comment row exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// ListByPost retrieves every comment for a post in creation order,
	// with author name/avatar hydrated for logged-in authors.
	ListByPost(ctx context.Context, postCode string) ([]*Comment, error)

	// Delete removes a comment. The schema cascades the delete to descendant
	// comments and to every like row referencing any removed comment.
	Delete(ctx context.Context, id int64) error
}

// LikeCounter is the slice of the like store the thread builder needs:
// batch like counts and the caller's liked set for a list of comment ids.
// Satisfied by the comment-like side of the likes repository.
type LikeCounter interface {
	CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int, error)
	LikedByComments(ctx context.Context, commentIDs []int64, fingerprint string) (map[int64]bool, error)
}
