// Package db persists the user's reading state in a local SQLite file:
// which posts have been opened and which board the last session ended on.
// Fetched pages themselves are never stored.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"parkview/internal/models"
)

const lastBoardKey = "last_board"

// Store wraps the SQLite connection.
type Store struct {
	conn *sql.DB
}

// Open opens (creating if needed) the database at dbPath and initializes
// the schema.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec(createSeenPostsTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create seen_posts schema: %w", err)
	}
	if _, err := conn.Exec(createAppStateTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create app_state schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// MarkSeen records that one post was opened. Marking the same post twice
// is a no-op.
func (s *Store) MarkSeen(boardPath string, row models.Row) error {
	if _, err := s.conn.Exec(insertSeenPost, boardPath, row.URL, row.Title); err != nil {
		return fmt.Errorf("failed to mark post seen: %w", err)
	}
	return nil
}

// MarkSeenAll records a whole row sequence as opened in one transaction.
func (s *Store) MarkSeenAll(boardPath string, rows []models.Row) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSeenPost)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(boardPath, r.URL, r.Title); err != nil {
			return fmt.Errorf("failed to mark %s seen: %w", r.URL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SeenURLs returns the set of opened post URLs for one board.
func (s *Store) SeenURLs(boardPath string) (map[string]bool, error) {
	rows, err := s.conn.Query(selectSeenPosts, boardPath)
	if err != nil {
		return nil, fmt.Errorf("failed to query seen posts: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan seen post: %w", err)
		}
		seen[url] = true
	}
	return seen, nil
}

// PruneSeenBefore deletes read-history entries older than cutoff and
// returns how many were removed.
func (s *Store) PruneSeenBefore(cutoff time.Time) (int64, error) {
	res, err := s.conn.Exec(deleteSeenPostsBefore, cutoff.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return 0, fmt.Errorf("failed to prune seen posts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned posts: %w", err)
	}
	return n, nil
}

// SetLastBoard remembers the board path to restore next session.
func (s *Store) SetLastBoard(path string) error {
	if _, err := s.conn.Exec(upsertAppState, lastBoardKey, path); err != nil {
		return fmt.Errorf("failed to save last board: %w", err)
	}
	return nil
}

// LastBoard returns the persisted board path, or "" when none was saved.
func (s *Store) LastBoard() (string, error) {
	var path string
	err := s.conn.QueryRow(selectAppState, lastBoardKey).Scan(&path)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load last board: %w", err)
	}
	return path, nil
}
