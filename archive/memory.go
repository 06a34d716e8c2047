package archive

import (
	"context"
	"sort"
	"sync"
)

// MemStore is an in-memory Store implementation. Posts are lost when
// the process exits. Safe for concurrent use.
type MemStore struct {
	mu    sync.RWMutex
	posts map[string]Post
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{posts: make(map[string]Post)}
}

// SavePost implements Store.
func (s *MemStore) SavePost(ctx context.Context, post Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.RunID] = post
	return nil
}

// GetPost implements Store.
func (s *MemStore) GetPost(ctx context.Context, runID string) (Post, error) {
	if err := ctx.Err(); err != nil {
		return Post{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[runID]
	if !ok {
		return Post{}, ErrNotFound
	}
	return post, nil
}

// ListPosts implements Store.
func (s *MemStore) ListPosts(ctx context.Context, limit int) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].RunID > posts[j].RunID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// Close implements Store. It is a no-op for the in-memory store.
func (s *MemStore) Close() error {
	return nil
}
