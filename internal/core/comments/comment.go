package comments

import (
	"time"
)

// Comment is a stored comment row. Comments are immutable after creation:
// there is no edit path, and removal only happens as a cascade when a parent
// is deleted.
//
// Exactly one of UserID / GuestName is set, depending on whether the author
// was logged in. ParentID is nil for top-level comments.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Text      string    `json:"text" db:"text"`
	PostCode  string    `json:"postCode" db:"post_code"`
	UserID    *int64    `json:"userId,omitempty" db:"user_id"`
	GuestName *string   `json:"guestName,omitempty" db:"guest_name"`
	ParentID  *int64    `json:"parentId,omitempty" db:"parent_id"`
	ID        int64     `json:"id" db:"id"`

	// Hydrated by the repository via JOIN on users; empty for guest comments
	AuthorName   string `json:"-" db:"-"`
	AuthorAvatar string `json:"-" db:"-"`
}

// CreateCommentRequest carries the caller-supplied fields for a new comment.
// GuestName is only consulted when the caller is anonymous.
type CreateCommentRequest struct {
	PostCode  string `json:"postCode"`
	Text      string `json:"text"`
	GuestName string `json:"guestName"`
	ParentID  *int64 `json:"parentId"`
}
