package comments

// AuthorView is the public shape of a logged-in comment author
type AuthorView struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// CommentView is a comment enriched with like data and nested replies,
// ready for rendering. Replies is always non-nil so JSON serializes [] and
// never null.
type CommentView struct {
	ID        int64          `json:"id"`
	PostCode  string         `json:"postCode"`
	User      *AuthorView    `json:"user"`
	GuestName *string        `json:"guestName"`
	ParentID  *int64         `json:"parentId"`
	Text      string         `json:"text"`
	CreatedAt string         `json:"createdAt"`
	Likes     int            `json:"likes"`
	LikedByMe bool           `json:"likedByMe"`
	Replies   []*CommentView `json:"replies"`
}

// ThreadResponse is the full comment tree for a post. Total counts every
// node, nested replies included.
type ThreadResponse struct {
	Comments []*CommentView `json:"comments"`
	Total    int            `json:"total"`
}
