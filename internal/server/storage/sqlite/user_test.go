package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/casesync/internal/models"
	"github.com/iudanet/casesync/internal/server/storage"
)

func newTestUser(username string) *models.User {
	return &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("medic")
	require.NoError(t, s.CreateUser(ctx, user))

	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, user.Username, retrieved.Username)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
	assert.True(t, user.CreatedAt.Equal(retrieved.CreatedAt))
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.CreateUser(ctx, newTestUser("duplicate")))

	err := s.CreateUser(ctx, newTestUser("duplicate"))
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_Get(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser("findme")
	require.NoError(t, s.CreateUser(ctx, user))

	tests := []struct {
		wantError error
		get       func() (*models.User, error)
		name      string
	}{
		{
			name: "by username",
			get:  func() (*models.User, error) { return s.GetUserByUsername(ctx, "findme") },
		},
		{
			name: "by id",
			get:  func() (*models.User, error) { return s.GetUserByID(ctx, user.ID) },
		},
		{
			name:      "unknown username",
			get:       func() (*models.User, error) { return s.GetUserByUsername(ctx, "notfound") },
			wantError: storage.ErrUserNotFound,
		},
		{
			name:      "unknown id",
			get:       func() (*models.User, error) { return s.GetUserByID(ctx, "nonexistent-id") },
			wantError: storage.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retrieved, err := tt.get()
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, retrieved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, retrieved.ID)
			assert.Equal(t, user.Username, retrieved.Username)
		})
	}
}
