package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a SQLite implementation of Store backed by a single
// database file. Designed for local single-process use: zero setup,
// WAL mode for concurrent reads, transactional writes.
//
// Example:
//
//	store, err := archive.NewSQLiteStore("./posts.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
// Use ":memory:" as the path for a throwaway in-memory database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the database at path and
// migrates the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS blog_posts (
			run_id TEXT PRIMARY KEY,
			topic TEXT NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		)
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create blog_posts table: %w", err)
	}
	if _, err := db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_posts_created_at ON blog_posts(created_at)"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create idx_posts_created_at: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// SavePost implements Store.
func (s *SQLiteStore) SavePost(ctx context.Context, post Post) error {
	createdAt := post.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blog_posts (run_id, topic, title, content, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			topic = excluded.topic,
			title = excluded.title,
			content = excluded.content,
			created_at = excluded.created_at
	`, post.RunID, post.Topic, post.Title, post.Content, createdAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

// GetPost implements Store.
func (s *SQLiteStore) GetPost(ctx context.Context, runID string) (Post, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT run_id, topic, title, content, created_at
		FROM blog_posts WHERE run_id = ?
	`, runID)

	post, err := scanPost(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Post{}, ErrNotFound
	}
	if err != nil {
		return Post{}, fmt.Errorf("failed to load post: %w", err)
	}
	return post, nil
}

// scanPost reads one row, parsing the RFC 3339 created_at column.
func scanPost(scan func(dest ...interface{}) error) (Post, error) {
	var post Post
	var createdAt string
	if err := scan(&post.RunID, &post.Topic, &post.Title, &post.Content, &createdAt); err != nil {
		return Post{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Post{}, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	post.CreatedAt = parsed
	return post, nil
}

// ListPosts implements Store.
func (s *SQLiteStore) ListPosts(ctx context.Context, limit int) ([]Post, error) {
	query := `
		SELECT run_id, topic, title, content, created_at
		FROM blog_posts ORDER BY created_at DESC, run_id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
