//go:build bolt

package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/focset/internal/model"
	"go.etcd.io/bbolt"
)

const (
	boltFileName          = "history.bolt"
	boltBucketSubmissions = "submissions" // key: created_at/uid -> Submission JSON
	boltTimeLayout        = "2006-01-02T15:04:05.000000000Z"
)

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates a new Bolt database at the specified path.
// This is primarily exposed for testing purposes.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketSubmissions))
		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func initDB(dir string) (Store, error) {
	return NewBolt(filepath.Join(dir, boltFileName))
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltBucketSubmissions)) == nil {
			return bbolt.ErrBucketNotFound
		}

		return nil
	})
}

func (b *Bolt) RecordSubmission(_ context.Context, s *model.Submission) error {
	if s.UID == "" {
		s.UID = uuid.New().String()
	}

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	key := []byte(s.CreatedAt.UTC().Format(boltTimeLayout) + "/" + s.UID)

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSubmissions)).Put(key, data)
	})
}

func (b *Bolt) ListSubmissions(_ context.Context, limit int) ([]model.Submission, error) {
	var result []model.Submission

	err := b.storage.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(boltBucketSubmissions)).Cursor()

		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(result) >= limit {
				break
			}

			var s model.Submission
			if err := json.Unmarshal(v, &s); err != nil {
				return err
			}

			result = append(result, s)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
