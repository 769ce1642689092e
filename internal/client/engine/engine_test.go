package engine

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/casesync/internal/client/api"
	"github.com/iudanet/casesync/internal/client/listener"
	"github.com/iudanet/casesync/internal/client/storage"
	"github.com/iudanet/casesync/internal/client/storage/boltdb"
	"github.com/iudanet/casesync/internal/client/sync"
	"github.com/iudanet/casesync/internal/models"
)

// manualTimers таймеры, которые срабатывают только по вызову fire
type manualTimers struct {
	fns []func()
}

type manualTimer struct{ stopped *bool }

func (t manualTimer) Stop() bool {
	*t.stopped = true
	return true
}

func (m *manualTimers) AfterFunc(d time.Duration, f func()) sync.Timer {
	stopped := false
	m.fns = append(m.fns, func() {
		if !stopped {
			f()
		}
	})
	return manualTimer{stopped: &stopped}
}

func (m *manualTimers) fire() {
	fns := m.fns
	m.fns = nil
	for _, f := range fns {
		f()
	}
}

func echoAPI() *sync.RecordsAPIMock {
	return &sync.RecordsAPIMock{
		PostCaseFunc: func(ctx context.Context, c *models.Case) (*models.Case, error) {
			resp := c.Clone()
			resp.Version = c.Version + 1
			return resp, nil
		},
		PutCaseFunc: func(ctx context.Context, c *models.Case, expectedVersion int64) (*models.Case, error) {
			resp := c.Clone()
			resp.Version = expectedVersion + 1
			return resp, nil
		},
		DeleteCaseFunc: func(ctx context.Context, id string) error { return nil },
	}
}

type testEnv struct {
	engine  *Engine
	db      *boltdb.Storage
	api     *sync.RecordsAPIMock
	expirer *listener.ExpirerMock
	timers  *manualTimers
	dbPath  string
}

func openDB(t *testing.T, path string) *boltdb.Storage {
	t.Helper()
	db, err := boltdb.New(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestEnv(t *testing.T, dbPath string) *testEnv {
	t.Helper()
	if dbPath == "" {
		dbPath = filepath.Join(t.TempDir(), "client.db")
	}
	env := &testEnv{
		db:      openDB(t, dbPath),
		api:     echoAPI(),
		expirer: &listener.ExpirerMock{ExpireFunc: func(ctx context.Context) error { return nil }},
		timers:  &manualTimers{},
		dbPath:  dbPath,
	}

	e, err := New(context.Background(), Deps{
		API:        env.api,
		Cases:      env.db,
		Metadata:   env.db,
		Session:    env.expirer,
		Logger:     slog.New(slog.NewTextHandler(os.Stdout, nil)),
		SessionID:  "session-1",
		UserName:   func() string { return "medic" },
		ClientType: models.ClientTypeFieldHospital,
		AfterFunc:  env.timers.AfterFunc,
	})
	require.NoError(t, err)
	t.Cleanup(e.Close)
	env.engine = e
	return env
}

func TestEngine_CreateAndModifyArePersisted(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()

	id := env.engine.CreateCase(nil)
	require.NotEmpty(t, id)

	notes := "arrived by ambulance"
	require.NoError(t, env.engine.ModifyCase(id, models.CaseChanges{Notes: &notes}))

	c := env.engine.State().Cases[id]
	require.NotNil(t, c)
	assert.Equal(t, int64(1), c.Version)
	assert.Equal(t, models.CaseTypeFieldHospital, c.Type)
	assert.Equal(t, "medic", c.CreatedByName)

	stored, err := env.db.GetCase(ctx, storage.CollectionActive, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
	assert.Equal(t, notes, stored.Notes)
	assert.Equal(t, models.SyncStatusCreatedPending, stored.SyncStatus)
	assert.Contains(t, stored.PendingFields, models.PathNotes)
}

func TestEngine_StateSurvivesRestart(t *testing.T) {
	env := newTestEnv(t, "")

	kept := env.engine.CreateCase(nil)
	removed := env.engine.CreateCase(nil)
	require.NoError(t, env.engine.RemoveCase(removed))
	env.engine.Close()
	require.NoError(t, env.db.Close())

	restarted := newTestEnv(t, env.dbPath)
	state := restarted.engine.State()

	assert.Contains(t, state.Cases, kept)
	assert.Equal(t, models.SyncStatusCreatedPending, state.Cases[kept].SyncStatus)
	assert.Contains(t, state.Deleted, removed)
	assert.True(t, state.IsPendingDelete(removed))
}

func TestEngine_DebouncedSync(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()

	id := env.engine.CreateCase(nil)
	for i := 0; i < 5; i++ {
		notes := "edit"
		require.NoError(t, env.engine.ModifyCase(id, models.CaseChanges{Notes: &notes}))
	}
	assert.Empty(t, env.api.PostCaseCalls())

	env.timers.fire()

	require.Len(t, env.api.PostCaseCalls(), 1)
	c := env.engine.State().Cases[id]
	assert.Equal(t, models.SyncStatusSynced, c.SyncStatus)
	assert.Equal(t, int64(6), c.Version)

	stored, err := env.db.GetCase(ctx, storage.CollectionActive, id)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusSynced, stored.SyncStatus)
	assert.Empty(t, stored.PendingFields)

	last, err := env.engine.LastSync(ctx)
	require.NoError(t, err)
	assert.False(t, last.IsZero())
}

func TestEngine_RemoveAndSync(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()

	id := env.engine.CreateCase(nil)
	env.engine.Sync(ctx)
	require.NoError(t, env.engine.RemoveCase(id))
	env.engine.Sync(ctx)

	require.Len(t, env.api.DeleteCaseCalls(), 1)
	assert.False(t, env.engine.State().IsPendingDelete(id))

	pending, err := env.db.LoadPendingDeletes(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestEngine_ModifyPatientCustomField(t *testing.T) {
	env := newTestEnv(t, "")

	id := env.engine.CreateCase(nil)
	require.NoError(t, env.engine.ModifyPatientCustomField(id, models.CustomField{FieldName: "allergy", Value: "penicillin"}))
	require.NoError(t, env.engine.ModifyPatientCustomField(id, models.CustomField{FieldName: "blood", Value: "A+"}))
	require.NoError(t, env.engine.ModifyPatientCustomField(id, models.CustomField{FieldName: "allergy", Value: "none"}))

	c := env.engine.State().Cases[id]
	require.NotNil(t, c.Patient)
	assert.Equal(t, []models.CustomField{
		{FieldName: "allergy", Value: "none"},
		{FieldName: "blood", Value: "A+"},
	}, c.Patient.CustomFields)
	assert.Contains(t, c.PendingFields, models.PathPatientCustomFields)
	assert.Equal(t, int64(3), c.Version)
}

func TestEngine_UnknownCase(t *testing.T) {
	env := newTestEnv(t, "")
	notes := "x"

	assert.ErrorIs(t, env.engine.ModifyCase("missing", models.CaseChanges{Notes: &notes}), storage.ErrCaseNotFound)
	assert.ErrorIs(t, env.engine.ModifyPatientCustomField("missing", models.CustomField{FieldName: "a"}), storage.ErrCaseNotFound)
	assert.ErrorIs(t, env.engine.RemoveCase("missing"), storage.ErrCaseNotFound)
}

func TestEngine_UnauthenticatedPushResets(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	env.api.PostCaseFunc = func(ctx context.Context, c *models.Case) (*models.Case, error) {
		return nil, &api.RequestError{StatusCode: 401, HasResponse: true, Err: api.ErrUnauthenticated}
	}

	id := env.engine.CreateCase(nil)
	env.engine.Sync(ctx)

	assert.Len(t, env.expirer.ExpireCalls(), 1)
	assert.Empty(t, env.engine.State().Cases)

	_, err := env.db.GetCase(ctx, storage.CollectionActive, id)
	assert.ErrorIs(t, err, storage.ErrCaseNotFound)
}

func TestEngine_FetchAndRestore(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()

	env.api.FetchAllCasesFunc = func(ctx context.Context, caseType models.CaseType) (models.CasesHash, error) {
		assert.Equal(t, models.CaseTypeFieldHospital, caseType)
		return models.CasesHash{"srv": {ID: "srv", Version: 4, Status: models.CaseStatusOpen}}, nil
	}
	env.api.FetchDeletedCasesFunc = func(ctx context.Context, caseType models.CaseType) (models.CasesHash, error) {
		return models.CasesHash{"old": {ID: "old", Version: 2}}, nil
	}
	env.api.RestoreCaseFunc = func(ctx context.Context, id string) (*models.Case, error) {
		return &models.Case{ID: id, Version: 3, Status: models.CaseStatusOpen}, nil
	}

	require.NoError(t, env.engine.Fetch(ctx))
	require.NoError(t, env.engine.FetchDeleted(ctx))
	require.NoError(t, env.engine.Restore(ctx, "old"))

	state := env.engine.State()
	assert.Contains(t, state.Cases, "srv")
	assert.Contains(t, state.Cases, "old")
	assert.NotContains(t, state.Deleted, "old")

	stored, err := env.db.LoadCases(ctx, storage.CollectionActive)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	// восстановление не порождает отправку
	assert.Empty(t, env.timers.fns)
}
