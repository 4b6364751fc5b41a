// Package sqlite provides SQLite storage for the focset submission history.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/focset/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store implements the store.Store interface using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	migrator := NewMigrator(db)
	if err := migrator.MigrateUp(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks if the database is accessible.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// RecordSubmission inserts sub, assigning a UID if it has none.
func (s *Store) RecordSubmission(ctx context.Context, sub *model.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub.UID == "" {
		sub.UID = uuid.New().String()
	}

	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	parts, err := json.Marshal(sub.Parts)
	if err != nil {
		return fmt.Errorf("encoding parts: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submissions (uid, unique_id, friendly_name, part_type, specialty, parts, executable_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, sub.UID, sub.UniqueID, sub.FriendlyName, string(sub.PartType), sub.Specialty, string(parts), sub.ExecutablePath, sub.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}

	return nil
}

// ListSubmissions returns the most recent submissions first. A limit of
// zero or less returns all of them.
func (s *Store) ListSubmissions(ctx context.Context, limit int) ([]model.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT uid, unique_id, friendly_name, part_type, specialty, parts, executable_path, created_at
		FROM submissions
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var result []model.Submission

	for rows.Next() {
		var (
			sub       model.Submission
			partType  string
			parts     string
			createdAt string
		)

		if err := rows.Scan(&sub.UID, &sub.UniqueID, &sub.FriendlyName, &partType, &sub.Specialty, &parts, &sub.ExecutablePath, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}

		sub.PartType = model.BodyPart(partType)

		if err := json.Unmarshal([]byte(parts), &sub.Parts); err != nil {
			return nil, fmt.Errorf("decoding parts of %s: %w", sub.UID, err)
		}

		if sub.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("decoding created_at of %s: %w", sub.UID, err)
		}

		result = append(result, sub)
	}

	return result, rows.Err()
}
