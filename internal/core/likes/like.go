package likes

import "time"

// Kind distinguishes the two like targets. Post likes key on the catalog's
// post code; comment likes key on the decimal comment id.
type Kind string

const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

// Direction is the requested side of a toggle.
type Direction string

const (
	DirectionLike   Direction = "like"
	DirectionUnlike Direction = "unlike"
)

// Like is a stored like record. Its existence means "this identity currently
// likes this target"; unliking deletes the row. At most one row per
// (target, fingerprint) exists at any time - the store's unique constraint
// enforces it, not the application.
type Like struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	TargetID    string    `json:"targetId"`
	Fingerprint string    `json:"-" db:"fingerprint"`
	Kind        Kind      `json:"kind"`
}

// State is the caller-facing like summary for one target
type State struct {
	Liked      bool `json:"liked"`
	TotalLikes int  `json:"total_likes"`
}
