package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/casesync/internal/client/storage"
)

const (
	keyLastSync = "last_sync"
)

// SaveLastSync saves the time of the last successful sync
func (s *Storage) SaveLastSync(ctx context.Context, t time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := t.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to marshal last sync time: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyLastSync), data); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSync retrieves the time of the last successful sync
// Returns zero time if no sync has been performed yet
func (s *Storage) GetLastSync(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var t time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(keyLastSync))
		if data == nil {
			// Синхронизации еще не было
			return nil
		}

		return t.UnmarshalBinary(data)
	})

	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return t, nil
}
