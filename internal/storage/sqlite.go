// Package storage provides SQLite-based persistence for best scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNegativeScore is returned when saving a score below zero.
var ErrNegativeScore = errors.New("storage: score must not be negative")

// Store manages the SQLite database connection for best-score persistence.
type Store struct {
	db *sql.DB
}

// BestScoreEntry is the best score of one player profile.
type BestScoreEntry struct {
	Profile   string
	Score     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_scores (
			profile TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BestScore returns the best score of the given profile.
// Returns 0 if the profile has never scored.
func (s *Store) BestScore(profile string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM best_scores WHERE profile = ?",
		profile,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	return score, nil
}

// SaveBestScore stores score for profile unless the stored value is already
// at least as high. Reports whether the row changed.
func (s *Store) SaveBestScore(profile string, score int) (bool, error) {
	if score < 0 {
		return false, ErrNegativeScore
	}

	result, err := s.db.Exec(
		`INSERT INTO best_scores (profile, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE
		 SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > best_scores.score`,
		profile, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save best score: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}

	return n > 0, nil
}

// ResetBestScore forgets the best score of the given profile.
func (s *Store) ResetBestScore(profile string) error {
	_, err := s.db.Exec("DELETE FROM best_scores WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot reset best score: %w", err)
	}
	return nil
}

// BestScores lists every profile's best score, highest first.
func (s *Store) BestScores() ([]BestScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT profile, score, updated_at
		 FROM best_scores
		 ORDER BY score DESC, profile ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	var entries []BestScoreEntry
	for rows.Next() {
		var e BestScoreEntry
		var updatedAt any
		if err := rows.Scan(&e.Profile, &e.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
