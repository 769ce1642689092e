package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/casesync/internal/client/storage"
)

var authKey = []byte("current")

var errAuthBucketMissing = errors.New("auth bucket not found")

func authBucket(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	b := tx.Bucket(bucketAuth)
	if b == nil {
		return nil, errAuthBucketMissing
	}
	return b, nil
}

// SaveAuth сохраняет данные авторизации текущего пользователя
func (s *Storage) SaveAuth(_ context.Context, auth *storage.AuthData) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	raw, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("failed to marshal auth data: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := authBucket(tx)
		if err != nil {
			return err
		}
		if err := b.Put(authKey, raw); err != nil {
			return fmt.Errorf("failed to save auth data: %w", err)
		}
		return nil
	})
}

// GetAuth возвращает сохраненную авторизацию или storage.ErrAuthNotFound.
// Срок действия токена не проверяется, см. storage.AuthData.Expired.
func (s *Storage) GetAuth(_ context.Context) (*storage.AuthData, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var auth storage.AuthData
	err := s.db.View(func(tx *bbolt.Tx) error {
		b, err := authBucket(tx)
		if err != nil {
			return err
		}
		raw := b.Get(authKey)
		if raw == nil {
			return storage.ErrAuthNotFound
		}
		if err := json.Unmarshal(raw, &auth); err != nil {
			return fmt.Errorf("failed to unmarshal auth data: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &auth, nil
}

// DeleteAuth удаляет авторизацию (logout, истекшая сессия)
func (s *Storage) DeleteAuth(_ context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := authBucket(tx)
		if err != nil {
			return err
		}
		if b.Get(authKey) == nil {
			return storage.ErrAuthNotFound
		}
		if err := b.Delete(authKey); err != nil {
			return fmt.Errorf("failed to delete auth data: %w", err)
		}
		return nil
	})
}
