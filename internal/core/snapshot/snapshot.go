// Package snapshot holds the frozen engagement counts exported from the
// external catalog. The export is produced once, before this service takes
// over engagement, and never changes afterwards; live totals are computed as
// snapshot baseline plus locally stored activity.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
)

// Counts is the frozen external engagement for one post.
type Counts struct {
	LikeCount    int
	CommentCount int
}

// Snapshot is an immutable map of post code to external counts. The zero
// value is not usable; construct with New, Empty, or Load.
type Snapshot struct {
	counts map[string]Counts
}

// Empty returns a snapshot with no posts. Every lookup yields zero.
func Empty() *Snapshot {
	return &Snapshot{counts: map[string]Counts{}}
}

// New builds a snapshot from an already-parsed counts map.
func New(counts map[string]Counts) *Snapshot {
	copied := make(map[string]Counts, len(counts))
	for code, c := range counts {
		copied[code] = c
	}
	return &Snapshot{counts: copied}
}

// catalogExport mirrors the JSON layout of the catalog export file.
type catalogExport struct {
	Posts []struct {
		Code         string `json:"code"`
		LikeCount    int    `json:"like_count"`
		CommentCount int    `json:"comment_count"`
	} `json:"posts"`
}

// Load reads and parses the catalog export file at path.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var export catalogExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	counts := make(map[string]Counts, len(export.Posts))
	for _, p := range export.Posts {
		counts[p.Code] = Counts{
			LikeCount:    p.LikeCount,
			CommentCount: p.CommentCount,
		}
	}
	return &Snapshot{counts: counts}, nil
}

// LikeCount returns the external like count for a post, zero when the post
// is not in the export.
func (s *Snapshot) LikeCount(postCode string) int {
	return s.counts[postCode].LikeCount
}

// CommentCount returns the external comment count for a post, zero when the
// post is not in the export.
func (s *Snapshot) CommentCount(postCode string) int {
	return s.counts[postCode].CommentCount
}

// Len returns the number of posts in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.counts)
}
