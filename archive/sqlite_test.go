package archive

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "posts.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		want := Post{
			RunID:     "run-1",
			Topic:     "rust vs go",
			Title:     "Rust vs Go: A Deep Dive",
			Content:   "## Intro\n...",
			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 123456789, time.UTC),
		}
		if err := store.SavePost(ctx, want); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}

		got, err := store.GetPost(ctx, "run-1")
		if err != nil {
			t.Fatalf("GetPost failed: %v", err)
		}
		if got.RunID != want.RunID || got.Topic != want.Topic ||
			got.Title != want.Title || got.Content != want.Content {
			t.Errorf("expected %+v, got %+v", want, got)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("expected created_at %v, got %v", want.CreatedAt, got.CreatedAt)
		}
	})

	t.Run("get unknown run", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		_, err := store.GetPost(ctx, "no-such-run")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("save same run replaces", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		now := time.Now().UTC()
		if err := store.SavePost(ctx, Post{RunID: "run-1", Title: "Draft", CreatedAt: now}); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
		if err := store.SavePost(ctx, Post{RunID: "run-1", Title: "Final", CreatedAt: now}); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}

		got, err := store.GetPost(ctx, "run-1")
		if err != nil {
			t.Fatalf("GetPost failed: %v", err)
		}
		if got.Title != "Final" {
			t.Errorf("expected replaced title, got %q", got.Title)
		}

		posts, err := store.ListPosts(ctx, 0)
		if err != nil {
			t.Fatalf("ListPosts failed: %v", err)
		}
		if len(posts) != 1 {
			t.Errorf("expected 1 post after replace, got %d", len(posts))
		}
	})

	t.Run("zero created_at gets stamped", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		if err := store.SavePost(ctx, Post{RunID: "run-1", Title: "Untitled"}); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}

		got, err := store.GetPost(ctx, "run-1")
		if err != nil {
			t.Fatalf("GetPost failed: %v", err)
		}
		if got.CreatedAt.IsZero() {
			t.Error("expected a non-zero created_at stamp")
		}
	})

	t.Run("list newest first with limit", func(t *testing.T) {
		store := newTestSQLiteStore(t)

		base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		for i, runID := range []string{"run-a", "run-b", "run-c"} {
			post := Post{RunID: runID, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
			if err := store.SavePost(ctx, post); err != nil {
				t.Fatalf("SavePost failed: %v", err)
			}
		}

		posts, err := store.ListPosts(ctx, 0)
		if err != nil {
			t.Fatalf("ListPosts failed: %v", err)
		}
		wantOrder := []string{"run-c", "run-b", "run-a"}
		if len(posts) != len(wantOrder) {
			t.Fatalf("expected %d posts, got %d", len(wantOrder), len(posts))
		}
		for i, want := range wantOrder {
			if posts[i].RunID != want {
				t.Fatalf("expected order %v, got position %d = %s", wantOrder, i, posts[i].RunID)
			}
		}

		limited, err := store.ListPosts(ctx, 2)
		if err != nil {
			t.Fatalf("ListPosts failed: %v", err)
		}
		if len(limited) != 2 || limited[0].RunID != "run-c" || limited[1].RunID != "run-b" {
			t.Errorf("expected [run-c run-b], got %v", limited)
		}
	})
}
