package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore is a MySQL/MariaDB implementation of Store. Use it when
// the archive must be shared across hosts or survive the machine the
// agent runs on.
//
// The DSN format follows go-sql-driver/mysql:
//
//	user:password@tcp(localhost:3306)/blog?parseTime=true
//
// parseTime=true is required so created_at scans into time.Time.
// Never hardcode credentials; read the DSN from the environment.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore connects to the database behind dsn, verifies the
// connection, and migrates the schema.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	if !strings.Contains(dsn, "parseTime=true") {
		return nil, fmt.Errorf("mysql DSN must include parseTime=true")
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS blog_posts (
			run_id VARCHAR(64) PRIMARY KEY,
			topic TEXT NOT NULL,
			title TEXT NOT NULL,
			content MEDIUMTEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			INDEX idx_posts_created_at (created_at)
		)
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create blog_posts table: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

// SavePost implements Store.
func (s *MySQLStore) SavePost(ctx context.Context, post Post) error {
	createdAt := post.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blog_posts (run_id, topic, title, content, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			topic = VALUES(topic),
			title = VALUES(title),
			content = VALUES(content),
			created_at = VALUES(created_at)
	`, post.RunID, post.Topic, post.Title, post.Content, createdAt)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

// GetPost implements Store.
func (s *MySQLStore) GetPost(ctx context.Context, runID string) (Post, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT run_id, topic, title, content, created_at
		FROM blog_posts WHERE run_id = ?
	`, runID)

	var post Post
	err := row.Scan(&post.RunID, &post.Topic, &post.Title, &post.Content, &post.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Post{}, ErrNotFound
	}
	if err != nil {
		return Post{}, fmt.Errorf("failed to load post: %w", err)
	}
	return post, nil
}

// ListPosts implements Store.
func (s *MySQLStore) ListPosts(ctx context.Context, limit int) ([]Post, error) {
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
		var post Post
		if err := rows.Scan(&post.RunID, &post.Topic, &post.Title, &post.Content, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Close implements Store.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
