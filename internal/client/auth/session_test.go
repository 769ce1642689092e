package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/casesync/internal/client/storage"
)

func TestNewSession(t *testing.T) {
	a := NewSession()
	b := NewSession()

	_, err := uuid.Parse(a.SessionID())
	require.NoError(t, err)
	assert.NotEqual(t, a.SessionID(), b.SessionID())
	assert.False(t, a.IsAuthenticated())
}

func TestSession_AuthenticateReset(t *testing.T) {
	s := NewSession()
	id := s.SessionID()

	s.Reset("previous error")
	s.Authenticate(storage.AuthData{Username: "medic", AccessToken: "jwt"})

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "jwt", s.AccessToken())
	assert.Equal(t, "medic", s.Username())
	assert.Empty(t, s.Err())

	s.Reset(ExpiredMessage)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Username())
	assert.Equal(t, ExpiredMessage, s.Err())
	assert.Equal(t, id, s.SessionID(), "session id survives reset")
}
