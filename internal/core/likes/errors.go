package likes

import "errors"

var (
	// ErrCommentNotFound indicates the comment being liked doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrInvalidDirection indicates the direction is not "like" or "unlike"
	ErrInvalidDirection = errors.New("invalid direction: must be 'like' or 'unlike'")
)
