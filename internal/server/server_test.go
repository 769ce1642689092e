package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/casesync/internal/client/api"
	"github.com/iudanet/casesync/internal/client/engine"
	"github.com/iudanet/casesync/internal/client/listener"
	"github.com/iudanet/casesync/internal/client/storage/boltdb"
	"github.com/iudanet/casesync/internal/client/sync"
	"github.com/iudanet/casesync/internal/client/ws"
	"github.com/iudanet/casesync/internal/models"
	"github.com/iudanet/casesync/internal/server/handlers"
	"github.com/iudanet/casesync/internal/server/jwt"
	"github.com/iudanet/casesync/internal/server/push"
	"github.com/iudanet/casesync/internal/server/storage/sqlite"
	"github.com/iudanet/casesync/pkg/api"
)

const (
	testUser     = "medic"
	testPassword = "correct-horse"
)

type testServer struct {
	server  *httptest.Server
	storage *sqlite.Storage
	hub     *push.Hub
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	logger := testLogger()

	s, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, handlers.SeedUser(ctx, s, testUser, testPassword))

	hub := push.NewHub(logger, push.DefaultConfig())
	router := NewRouter(Deps{
		Logger:  logger,
		Users:   s,
		Cases:   s,
		Tokens:  jwt.NewService("test-secret", time.Hour),
		Hub:     hub,
		DB:      s,
		Version: "test",
	})
	server := httptest.NewServer(router)
	t.Cleanup(func() {
		hub.Close()
		server.Close()
		router.Close()
	})

	return &testServer{server: server, storage: s, hub: hub}
}

// credentials статичные учетные данные клиента
type credentials struct {
	sessionID string
	token     string
}

func (c *credentials) SessionID() string   { return c.sessionID }
func (c *credentials) AccessToken() string { return c.token }

type noopTimer struct{}

func (noopTimer) Stop() bool { return true }

// newClient логинится и собирает клиентский движок, отправка только через Sync
func (ts *testServer) newClient(t *testing.T, sessionID string) (*engine.Engine, *credentials) {
	t.Helper()
	ctx := context.Background()

	creds := &credentials{sessionID: sessionID}
	apiClient := clientapi.NewClient(ts.server.URL, creds)
	resp, err := apiClient.Login(ctx, api.LoginRequest{Username: testUser, Password: testPassword})
	require.NoError(t, err)
	creds.token = resp.AccessToken

	db, err := boltdb.New(ctx, filepath.Join(t.TempDir(), sessionID+".db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	e, err := engine.New(ctx, engine.Deps{
		API:        apiClient,
		Cases:      db,
		Metadata:   db,
		Session:    &listener.ExpirerMock{ExpireFunc: func(ctx context.Context) error { return nil }},
		Logger:     testLogger(),
		SessionID:  sessionID,
		UserName:   func() string { return testUser },
		ClientType: models.ClientTypeFieldHospital,
		AfterFunc:  func(d time.Duration, f func()) sync.Timer { return noopTimer{} },
	})
	require.NoError(t, err)
	t.Cleanup(e.Close)

	return e, creds
}

func (ts *testServer) subscribe(t *testing.T, e *engine.Engine, creds *credentials) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.server.URL, "http") + "/api/v1/push"
	sub := ws.NewSubscriber(url, creds, e.Listener(), testLogger())
	e.Listener().SetTransport(sub)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = sub.Run(context.Background())
	}()
	t.Cleanup(func() {
		sub.Disconnect()
		<-done
	})
}

func TestSync_TwoSessionsConverge(t *testing.T) {
	ctx := context.Background()
	ts := newTestServer(t)

	alice, _ := ts.newClient(t, "session-a")
	bob, bobCreds := ts.newClient(t, "session-b")
	ts.subscribe(t, bob, bobCreds)
	require.Eventually(t, func() bool { return ts.hub.Count() == 1 }, 3*time.Second, 10*time.Millisecond)

	// alice создает кейс, bob получает его через push
	id := alice.CreateCase(nil)
	alice.Sync(ctx)
	require.Equal(t, models.SyncStatusSynced, alice.State().Cases[id].SyncStatus)

	require.Eventually(t, func() bool {
		return bob.State().Cases[id] != nil
	}, 3*time.Second, 10*time.Millisecond)

	// bob закрывает кейс и меняет номер: локальная версия 3
	closed := models.CaseStatusClosed
	number := 7
	require.NoError(t, bob.ModifyCase(id, models.CaseChanges{Status: &closed}))
	require.NoError(t, bob.ModifyCase(id, models.CaseChanges{Number: &number}))
	bob.Sync(ctx)
	require.Equal(t, int64(3), bob.State().Cases[id].Version)

	// alice не подписана и правит устаревшую версию: 409, слияние, повтор
	notes := "from alice"
	require.NoError(t, alice.ModifyCase(id, models.CaseChanges{Notes: &notes}))
	alice.Sync(ctx)

	got := alice.State().Cases[id]
	require.NotNil(t, got)
	assert.Equal(t, models.SyncStatusSynced, got.SyncStatus)
	assert.Equal(t, int64(4), got.Version)
	assert.Equal(t, notes, got.Notes)
	assert.Equal(t, models.CaseStatusClosed, got.Status)
	assert.Empty(t, alice.State().Error)

	stored, err := ts.storage.GetCase(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stored.Version)
	assert.Equal(t, notes, stored.Notes)
	assert.Equal(t, models.CaseStatusClosed, stored.Status)
	require.NotNil(t, stored.Number)
	assert.Equal(t, 7, *stored.Number)

	// bob получает объединенный кейс
	require.Eventually(t, func() bool {
		c := bob.State().Cases[id]
		return c != nil && c.Version == 4 && c.Notes == notes
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, "session-a", bob.State().Cases[id].SessionLastUpdate)

	// удаление у alice убирает кейс у bob
	require.NoError(t, alice.RemoveCase(id))
	alice.Sync(ctx)
	assert.False(t, alice.State().IsPendingDelete(id))

	require.Eventually(t, func() bool {
		_, ok := bob.State().Cases[id]
		return !ok
	}, 3*time.Second, 10*time.Millisecond)

	// восстановление возвращает кейс на сервере
	require.NoError(t, alice.FetchDeleted(ctx))
	require.Contains(t, alice.State().Deleted, id)
	require.NoError(t, alice.Restore(ctx, id))
	assert.Contains(t, alice.State().Cases, id)

	restored, err := ts.storage.GetCase(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(6), restored.Version)
}

func TestRouter_Endpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.server.URL + "/api/v1/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health handlers.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "test", health.Version)

	tests := []struct {
		method   string
		path     string
		wantCode int
	}{
		{method: http.MethodGet, path: "/api/v1/cases", wantCode: http.StatusUnauthorized},
		{method: http.MethodGet, path: "/api/v1/cases/deleted", wantCode: http.StatusUnauthorized},
		{method: http.MethodGet, path: "/api/v1/case/c1", wantCode: http.StatusUnauthorized},
		{method: http.MethodPut, path: "/api/v1/case/undelete/c1", wantCode: http.StatusUnauthorized},
		{method: http.MethodGet, path: "/api/v1/push", wantCode: http.StatusUnauthorized},
		{method: http.MethodPatch, path: "/api/v1/case/c1", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/api/v1/unknown", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.server.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestRouter_LoginRateLimit(t *testing.T) {
	logger := testLogger()
	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	hub := push.NewHub(logger, push.DefaultConfig())
	router := NewRouter(Deps{
		Logger:    logger,
		Users:     s,
		Cases:     s,
		Tokens:    jwt.NewService("test-secret", time.Hour),
		Hub:       hub,
		LoginRate: 2,
	})
	defer router.Close()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
			strings.NewReader(`{"username":"medic","password":"wrong-password"}`))
		req.RemoteAddr = "192.0.2.10:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New(ln.Addr().String(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
