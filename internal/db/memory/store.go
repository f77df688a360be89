// Package memory provides in-memory repository implementations backing
// service-level unit tests. They honor the same contracts as the PostgreSQL
// repositories: creation-ordered listing, idempotent like insert/delete
// under a per-store mutex, cascading comment deletion.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"Mosaic/internal/core/comments"
	"Mosaic/internal/core/likes"
	"Mosaic/internal/core/users"
)

// Store holds all in-memory tables behind one mutex
type Store struct {
	mu           sync.RWMutex
	users        map[int64]*users.User
	usersByExt   map[string]int64
	comments     map[int64]*comments.Comment
	postLikes    map[string]map[string]time.Time // postCode -> fingerprint -> likedAt
	commentLikes map[int64]map[string]time.Time  // commentID -> fingerprint -> likedAt
	nextUserID   int64
	nextID       int64
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{
		users:        make(map[int64]*users.User),
		usersByExt:   make(map[string]int64),
		comments:     make(map[int64]*comments.Comment),
		postLikes:    make(map[string]map[string]time.Time),
		commentLikes: make(map[int64]map[string]time.Time),
	}
}

// Comments returns the store's comments.Repository view
func (s *Store) Comments() comments.Repository { return (*commentRepo)(s) }

// Likes returns the store's like repository view
func (s *Store) Likes() *LikeRepo { return (*LikeRepo)(s) }

// Users returns the store's users.UserRepository view
func (s *Store) Users() users.UserRepository { return (*userRepo)(s) }

// === users ===

type userRepo Store

func (r *userRepo) Upsert(ctx context.Context, req users.UpsertUserRequest) (*users.User, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.usersByExt[req.ExternalID]; ok {
		u := s.users[id]
		u.Email = req.Email
		u.DisplayName = req.DisplayName
		u.AvatarURL = req.AvatarURL
		copied := *u
		return &copied, nil
	}

	s.nextUserID++
	u := &users.User{
		ID:          s.nextUserID,
		ExternalID:  req.ExternalID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
		CreatedAt:   time.Now().UTC(),
	}
	s.users[u.ID] = u
	s.usersByExt[u.ExternalID] = u.ID
	copied := *u
	return &copied, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// === comments ===

type commentRepo Store

func (r *commentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	comment.ID = s.nextID
	comment.CreatedAt = time.Now().UTC()

	stored := *comment
	s.comments[comment.ID] = &stored
	return comment, nil
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, comments.ErrCommentNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *commentRepo) Exists(ctx context.Context, id int64) (bool, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.comments[id]
	return ok, nil
}

func (r *commentRepo) ListByPost(ctx context.Context, postCode string) ([]*comments.Comment, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*comments.Comment
	for _, c := range s.comments {
		if c.PostCode == postCode {
			copied := *c
			if copied.UserID != nil {
				if u, ok := s.users[*copied.UserID]; ok {
					copied.AuthorName = u.DisplayName
					copied.AuthorAvatar = u.AvatarURL
				}
			}
			result = append(result, &copied)
		}
	}

	// Ids are assigned in insertion order, so this is creation order
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteCascade(id)
	return nil
}

// deleteCascade removes a comment, its like rows, and all descendants.
// Caller holds the write lock.
func (s *Store) deleteCascade(id int64) {
	if _, ok := s.comments[id]; !ok {
		return
	}
	delete(s.comments, id)
	delete(s.commentLikes, id)

	var children []int64
	for childID, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == id {
			children = append(children, childID)
		}
	}
	for _, childID := range children {
		s.deleteCascade(childID)
	}
}

// === likes ===

// LikeRepo is the in-memory like repository. Like the PostgreSQL
// implementation it satisfies both likes.Repository and comments.LikeCounter.
type LikeRepo Store

func (r *LikeRepo) bucket(kind likes.Kind, targetID string) (map[string]time.Time, bool) {
	s := (*Store)(r)
	switch kind {
	case likes.KindPost:
		b, ok := s.postLikes[targetID]
		return b, ok
	case likes.KindComment:
		id, err := strconv.ParseInt(targetID, 10, 64)
		if err != nil {
			return nil, false
		}
		b, ok := s.commentLikes[id]
		return b, ok
	}
	return nil, false
}

func (r *LikeRepo) Like(ctx context.Context, kind likes.Kind, targetID, fingerprint string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case likes.KindPost:
		if s.postLikes[targetID] == nil {
			s.postLikes[targetID] = make(map[string]time.Time)
		}
		if _, exists := s.postLikes[targetID][fingerprint]; !exists {
			s.postLikes[targetID][fingerprint] = time.Now().UTC()
		}
	case likes.KindComment:
		id, err := strconv.ParseInt(targetID, 10, 64)
		if err != nil {
			return err
		}
		if s.commentLikes[id] == nil {
			s.commentLikes[id] = make(map[string]time.Time)
		}
		if _, exists := s.commentLikes[id][fingerprint]; !exists {
			s.commentLikes[id][fingerprint] = time.Now().UTC()
		}
	}
	return nil
}

func (r *LikeRepo) Unlike(ctx context.Context, kind likes.Kind, targetID, fingerprint string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := r.bucket(kind, targetID); ok {
		delete(b, fingerprint)
	}
	return nil
}

func (r *LikeRepo) Count(ctx context.Context, kind likes.Kind, targetID string) (int, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, _ := r.bucket(kind, targetID)
	return len(b), nil
}

func (r *LikeRepo) HasLiked(ctx context.Context, kind likes.Kind, targetID, fingerprint string) (bool, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := r.bucket(kind, targetID)
	if !ok {
		return false, nil
	}
	_, liked := b[fingerprint]
	return liked, nil
}

func (r *LikeRepo) CountByTargets(ctx context.Context, kind likes.Kind, targetIDs []string) (map[string]int, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]int, len(targetIDs))
	for _, t := range targetIDs {
		if b, ok := r.bucket(kind, t); ok && len(b) > 0 {
			result[t] = len(b)
		}
	}
	return result, nil
}

func (r *LikeRepo) LikedByTargets(ctx context.Context, kind likes.Kind, targetIDs []string, fingerprint string) (map[string]bool, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]bool, len(targetIDs))
	for _, t := range targetIDs {
		if b, ok := r.bucket(kind, t); ok {
			if _, liked := b[fingerprint]; liked {
				result[t] = true
			}
		}
	}
	return result, nil
}

func (r *LikeRepo) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int64]int, len(commentIDs))
	for _, id := range commentIDs {
		if b, ok := s.commentLikes[id]; ok && len(b) > 0 {
			result[id] = len(b)
		}
	}
	return result, nil
}

func (r *LikeRepo) LikedByComments(ctx context.Context, commentIDs []int64, fingerprint string) (map[int64]bool, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int64]bool, len(commentIDs))
	for _, id := range commentIDs {
		if b, ok := s.commentLikes[id]; ok {
			if _, liked := b[fingerprint]; liked {
				result[id] = true
			}
		}
	}
	return result, nil
}
