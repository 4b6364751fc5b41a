package store

import (
	"context"

	"github.com/inovacc/focset/internal/model"
)

// Store defines the history operations used by the app.
type Store interface {
	Ping() error
	Close() error
	RecordSubmission(ctx context.Context, s *model.Submission) error
	ListSubmissions(ctx context.Context, limit int) ([]model.Submission, error)
}

// Open opens the history store inside dir. The backend is chosen at build
// time: SQLite by default, bbolt with the "bolt" build tag.
func Open(dir string) (Store, error) {
	instance, err := initDB(dir)
	if err != nil {
		return nil, err
	}

	if err := instance.Ping(); err != nil {
		_ = instance.Close()
		return nil, err
	}

	return instance, nil
}
