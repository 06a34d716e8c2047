// Package archive provides persistent storage for finished blog posts.
//
// The workflow engine itself persists nothing between runs; the archive
// only records the final product of a successful run so it can be
// listed and retrieved later.
package archive

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested run ID has no archived post.
var ErrNotFound = errors.New("post not found")

// Post is an archived blog post together with the run that produced it.
type Post struct {
	// RunID is the workflow run that generated the post. Unique.
	RunID string

	// Topic is the input topic the post was generated from.
	Topic string

	// Title is the generated blog title.
	Title string

	// Content is the generated Markdown body.
	Content string

	// CreatedAt is when the post was archived (UTC).
	CreatedAt time.Time
}

// Store persists finished posts.
//
// Implementations:
//   - MemStore: in-memory, for tests and throwaway runs
//   - SQLiteStore: single-file database, zero setup
//   - MySQLStore: shared database for multi-host deployments
type Store interface {
	// SavePost archives a post. Saving the same RunID again replaces
	// the stored post.
	SavePost(ctx context.Context, post Post) error

	// GetPost retrieves the post archived for a run.
	// Returns ErrNotFound when the run has no archived post.
	GetPost(ctx context.Context, runID string) (Post, error)

	// ListPosts returns archived posts, newest first, at most limit
	// entries (all of them when limit <= 0).
	ListPosts(ctx context.Context, limit int) ([]Post, error)

	// Close releases any underlying resources.
	Close() error
}
