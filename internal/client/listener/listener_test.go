package listener

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/casesync/internal/client/api"
	"github.com/iudanet/casesync/internal/client/store"
	"github.com/iudanet/casesync/internal/models"
	pkgapi "github.com/iudanet/casesync/pkg/api"
)

const localSession = "local-session"

type testEnv struct {
	listener  *Listener
	store     *store.Store
	fetcher   *FetcherMock
	expirer   *ExpirerMock
	transport *TransportMock
}

func newTestEnv(t *testing.T, cases ...*models.Case) *testEnv {
	t.Helper()
	st := store.InitialState()
	for _, c := range cases {
		st.Cases[c.ID] = c
	}
	env := &testEnv{
		store: store.New(st),
		fetcher: &FetcherMock{
			FetchCaseFunc: func(ctx context.Context, id string) (*models.Case, error) {
				return &models.Case{ID: id, Version: 10, Notes: "fetched"}, nil
			},
		},
		expirer: &ExpirerMock{
			ExpireFunc: func(ctx context.Context) error { return nil },
		},
		transport: &TransportMock{DisconnectFunc: func() {}},
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	env.listener = New(env.fetcher, env.store, env.expirer, localSession, logger)
	env.listener.SetTransport(env.transport)
	return env
}

func pushBody(t *testing.T, c *models.Case, caseID, sessionID string) []byte {
	t.Helper()
	msg := pkgapi.PushMessage{CaseID: caseID, SessionID: sessionID}
	if c != nil {
		raw, err := json.Marshal(c)
		require.NoError(t, err)
		msg.Case = raw
	}
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	return body
}

func TestHandle_UpdateWithSnapshot(t *testing.T) {
	env := newTestEnv(t, &models.Case{ID: "c1", Version: 2, Notes: "old"})

	body := pushBody(t, &models.Case{ID: "c1", Version: 3, Notes: "new"}, "c1", "peer")
	require.NoError(t, env.listener.Handle(context.Background(), pkgapi.TopicCaseUpdate, body))

	c := env.store.State().Cases["c1"]
	assert.Equal(t, int64(3), c.Version)
	assert.Equal(t, "new", c.Notes)
	assert.Equal(t, "peer", c.SessionLastUpdate)
	assert.Empty(t, env.fetcher.FetchCaseCalls())
}

func TestHandle_CreateWithoutSnapshotFetches(t *testing.T) {
	env := newTestEnv(t)

	body := pushBody(t, nil, "c9", "peer")
	require.NoError(t, env.listener.Handle(context.Background(), pkgapi.TopicCaseCreate, body))

	require.Len(t, env.fetcher.FetchCaseCalls(), 1)
	assert.Equal(t, "c9", env.fetcher.FetchCaseCalls()[0].ID)
	c := env.store.State().Cases["c9"]
	require.NotNil(t, c)
	assert.Equal(t, "fetched", c.Notes)
}

func TestHandle_SkipsOwnPush(t *testing.T) {
	env := newTestEnv(t, &models.Case{ID: "c1", Version: 2, Notes: "old"})

	for _, topic := range []string{pkgapi.TopicCaseCreate, pkgapi.TopicCaseUpdate, pkgapi.TopicCaseDelete} {
		body := pushBody(t, &models.Case{ID: "c1", Version: 9, Notes: "echo"}, "c1", localSession)
		require.NoError(t, env.listener.Handle(context.Background(), topic, body))
	}

	c := env.store.State().Cases["c1"]
	require.NotNil(t, c)
	assert.Equal(t, int64(2), c.Version)
	assert.Equal(t, "old", c.Notes)
}

func TestHandle_StaleSnapshotKeepsPending(t *testing.T) {
	local := &models.Case{
		ID:            "c1",
		Version:       6,
		Status:        models.CaseStatusClosed,
		SyncStatus:    models.SyncStatusEditedPending,
		PendingFields: []string{models.PathStatus},
	}
	env := newTestEnv(t, local)

	body := pushBody(t, &models.Case{ID: "c1", Version: 5, Status: models.CaseStatusOpen}, "c1", "peer")
	require.NoError(t, env.listener.Handle(context.Background(), pkgapi.TopicCaseUpdate, body))

	assert.Same(t, local, env.store.State().Cases["c1"])
}

func TestHandle_Delete(t *testing.T) {
	tests := []struct {
		snapshot *models.Case
		name     string
		caseID   string
	}{
		{name: "id from payload", caseID: "c1"},
		{name: "id from snapshot", snapshot: &models.Case{ID: "c1", Version: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, &models.Case{ID: "c1", Version: 3})

			body := pushBody(t, tt.snapshot, tt.caseID, "peer")
			require.NoError(t, env.listener.Handle(context.Background(), pkgapi.TopicCaseDelete, body))

			state := env.store.State()
			assert.NotContains(t, state.Cases, "c1")
			assert.NotContains(t, state.Deleted, "c1")
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	env := newTestEnv(t)

	err := env.listener.Handle(context.Background(), "case/unknown", pushBody(t, nil, "c1", "peer"))
	assert.ErrorIs(t, err, ErrUnknownTopic)

	err = env.listener.Handle(context.Background(), pkgapi.TopicCaseUpdate, []byte(`{not json`))
	assert.Error(t, err)

	err = env.listener.Handle(context.Background(), pkgapi.TopicCaseDelete, pushBody(t, nil, "", "peer"))
	assert.Error(t, err)

	err = env.listener.Handle(context.Background(), pkgapi.TopicCaseUpdate, []byte(`{"case":"bad","caseId":"c1"}`))
	assert.Error(t, err)
}

func TestHandle_FetchUnauthenticatedResets(t *testing.T) {
	env := newTestEnv(t, &models.Case{ID: "c1", Version: 3})
	env.fetcher.FetchCaseFunc = func(ctx context.Context, id string) (*models.Case, error) {
		return nil, &api.RequestError{StatusCode: 401, HasResponse: true, Err: api.ErrUnauthenticated}
	}

	err := env.listener.Handle(context.Background(), pkgapi.TopicCaseUpdate, pushBody(t, nil, "c1", "peer"))

	require.ErrorIs(t, err, api.ErrUnauthenticated)
	assert.Len(t, env.transport.DisconnectCalls(), 1)
	assert.Len(t, env.expirer.ExpireCalls(), 1)
	assert.Empty(t, env.store.State().Cases)
}

func TestHandle_FetchErrorSurfaced(t *testing.T) {
	tests := []struct {
		name      string
		fetchErr  error
		wantError string
	}{
		{
			name: "server response",
			fetchErr: &api.RequestError{
				Method:       "GET",
				Path:         "/api/v1/case/c1",
				StatusCode:   500,
				HasResponse:  true,
				ErrorMessage: "db down",
				Err:          errors.New("server error"),
			},
			wantError: "Failed to load case\ndb down",
		},
		{
			name:      "transport error is muted",
			fetchErr:  &api.RequestError{Method: "GET", Path: "/api/v1/case/c1", Err: errors.New("connection refused")},
			wantError: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, &models.Case{ID: "c1", Version: 3})
			env.fetcher.FetchCaseFunc = func(ctx context.Context, id string) (*models.Case, error) {
				return nil, tt.fetchErr
			}

			err := env.listener.Handle(context.Background(), pkgapi.TopicCaseUpdate, pushBody(t, nil, "c1", "peer"))

			require.Error(t, err)
			state := env.store.State()
			assert.Equal(t, tt.wantError, state.Error)
			assert.Equal(t, int64(3), state.Cases["c1"].Version)
			assert.Empty(t, env.expirer.ExpireCalls())
		})
	}
}

func TestHandleUnauthenticated(t *testing.T) {
	env := newTestEnv(t, &models.Case{ID: "c1", Version: 3})
	env.store.Dispatch(store.SetError{Err: "old error"})
	env.expirer.ExpireFunc = func(ctx context.Context) error {
		return errors.New("storage closed")
	}

	var hooks []string
	env.listener.OnReset(func(ctx context.Context) { hooks = append(hooks, "layout") })
	env.listener.OnReset(func(ctx context.Context) { hooks = append(hooks, "settings") })

	env.listener.HandleUnauthenticated(context.Background())

	assert.Len(t, env.transport.DisconnectCalls(), 1)
	assert.Len(t, env.expirer.ExpireCalls(), 1)
	assert.Equal(t, []string{"layout", "settings"}, hooks)
	state := env.store.State()
	assert.Empty(t, state.Cases)
	assert.Empty(t, state.Error)
}

func TestHandleEnvelope(t *testing.T) {
	env := newTestEnv(t)

	assert.Error(t, env.listener.HandleEnvelope(context.Background(), []byte(`garbage`)))

	data, err := json.Marshal(pkgapi.PushEnvelope{
		Topic: pkgapi.TopicCaseCreate,
		Body:  pushBody(t, &models.Case{ID: "c5", Version: 1}, "c5", "peer"),
	})
	require.NoError(t, err)

	require.NoError(t, env.listener.HandleEnvelope(context.Background(), data))
	assert.Contains(t, env.store.State().Cases, "c5")
}
