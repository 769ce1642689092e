package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/casesync/internal/client/storage"
	"github.com/iudanet/casesync/internal/models"
)

// caseRecord хранимое представление кейса вместе с локальным учетом синхронизации
type caseRecord struct {
	Case          *models.Case      `json:"case"`
	PendingFields []string          `json:"pendingFields,omitempty"`
	SyncStatus    models.SyncStatus `json:"syncStatus"`
}

func encodeCase(c *models.Case) ([]byte, error) {
	return json.Marshal(caseRecord{
		Case:          c,
		PendingFields: c.PendingFields,
		SyncStatus:    c.SyncStatus,
	})
}

func decodeCase(data []byte) (*models.Case, error) {
	var rec caseRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	if rec.Case == nil {
		return nil, fmt.Errorf("empty case record")
	}
	rec.Case.PendingFields = rec.PendingFields
	rec.Case.SyncStatus = rec.SyncStatus
	return rec.Case, nil
}

func collectionBucket(col storage.Collection) ([]byte, error) {
	switch col {
	case storage.CollectionActive:
		return bucketCases, nil
	case storage.CollectionDeleted:
		return bucketDeletedCases, nil
	default:
		return nil, fmt.Errorf("unknown collection %q", col)
	}
}

// PutCases stores or replaces cases in collection
func (s *Storage) PutCases(ctx context.Context, col storage.Collection, cases ...*models.Case) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	name, err := collectionBucket(col)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", name)
		}

		for _, c := range cases {
			if c == nil {
				continue
			}
			data, err := encodeCase(c)
			if err != nil {
				return fmt.Errorf("failed to marshal case %s: %w", c.ID, err)
			}
			if err := bucket.Put([]byte(c.ID), data); err != nil {
				return fmt.Errorf("failed to save case %s: %w", c.ID, err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// DeleteCases removes cases from collection
func (s *Storage) DeleteCases(ctx context.Context, col storage.Collection, ids ...string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	name, err := collectionBucket(col)
	if err != nil {
		return err
	}

	return s.deleteKeys(name, ids)
}

// GetCase retrieves a case by ID
func (s *Storage) GetCase(ctx context.Context, col storage.Collection, id string) (*models.Case, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	name, err := collectionBucket(col)
	if err != nil {
		return nil, err
	}

	var c *models.Case

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return storage.ErrCaseNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrCaseNotFound
		}

		decoded, err := decodeCase(data)
		if err != nil {
			return fmt.Errorf("failed to unmarshal case: %w", err)
		}
		c = decoded

		return nil
	})

	if err != nil {
		return nil, err
	}

	return c, nil
}

// LoadCases returns all cases of collection
func (s *Storage) LoadCases(ctx context.Context, col storage.Collection) (models.CasesHash, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}
	name, err := collectionBucket(col)
	if err != nil {
		return nil, err
	}

	cases := models.CasesHash{}

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			// Нет bucket - возвращаем пустую коллекцию
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			c, err := decodeCase(v)
			if err != nil {
				return fmt.Errorf("failed to unmarshal case %s: %w", k, err)
			}
			cases[c.ID] = c
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", col, err)
	}

	return cases, nil
}

// AddPendingDeletes queues case ids for DELETE on server
func (s *Storage) AddPendingDeletes(ctx context.Context, ids ...string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingDeletes)
		if bucket == nil {
			return fmt.Errorf("pending deletes bucket not found")
		}
		for _, id := range ids {
			if err := bucket.Put([]byte(id), []byte{1}); err != nil {
				return fmt.Errorf("failed to queue delete of %s: %w", id, err)
			}
		}
		return nil
	})
}

// RemovePendingDeletes removes ids from the delete queue
func (s *Storage) RemovePendingDeletes(ctx context.Context, ids ...string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.deleteKeys(bucketPendingDeletes, ids)
}

// LoadPendingDeletes returns queued ids
func (s *Storage) LoadPendingDeletes(ctx context.Context) (map[string]struct{}, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	ids := map[string]struct{}{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPendingDeletes)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, _ []byte) error {
			ids[string(k)] = struct{}{}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load pending deletes: %w", err)
	}

	return ids, nil
}

// Clear removes all cases and pending deletes
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketCases, bucketDeletedCases, bucketPendingDeletes} {
			if tx.Bucket(name) != nil {
				if err := tx.DeleteBucket(name); err != nil {
					return fmt.Errorf("failed to delete %s bucket: %w", name, err)
				}
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

func (s *Storage) deleteKeys(name []byte, ids []string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", name)
		}
		for _, id := range ids {
			if err := bucket.Delete([]byte(id)); err != nil {
				return fmt.Errorf("failed to delete %s: %w", id, err)
			}
		}
		return nil
	})
}
