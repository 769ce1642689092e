package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/casesync/internal/merge"
	"github.com/iudanet/casesync/internal/models"
)

const (
	localSession = "session-local"
	peerSession  = "session-peer"
)

var (
	day     = time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	editNow = day.Add(15 * time.Hour)
)

func ptr[T any](v T) *T { return &v }

func syncedCase(id string, version int64) *models.Case {
	return &models.Case{
		ID:             id,
		Version:        version,
		Status:         models.CaseStatusOpen,
		Type:           models.CaseTypePrehospital,
		Realm:          models.RealmNormal,
		TimeCreate:     day.Add(time.Hour),
		TimeLastUpdate: day.Add(time.Hour),
		CaseDate:       day,
		SyncStatus:     models.SyncStatusSynced,
	}
}

func stateWith(cases ...*models.Case) State {
	s := InitialState()
	for _, c := range cases {
		s.Cases[c.ID] = c
	}
	return s
}

func peerOpts() merge.Options {
	return merge.Options{LocalSessionID: localSession, OriginSessionID: peerSession}
}

func TestReduce_CreateCase(t *testing.T) {
	now := time.Date(2026, 5, 4, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name       string
		clientType models.ClientType
		wantType   models.CaseType
	}{
		{name: "field client", clientType: models.ClientTypeField, wantType: models.CaseTypePrehospital},
		{name: "field hospital client", clientType: models.ClientTypeFieldHospital, wantType: models.CaseTypeFieldHospital},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(InitialState(), CreateCase{ID: "c1", Now: now, UserName: "medic", ClientType: tt.clientType, Number: ptr(42)})

			c := s.Cases["c1"]
			require.NotNil(t, c)
			assert.Equal(t, int64(0), c.Version)
			assert.Equal(t, models.SyncStatusCreatedPending, c.SyncStatus)
			assert.Equal(t, models.CaseStatusOpen, c.Status)
			assert.Equal(t, models.RealmNormal, c.Realm)
			assert.Equal(t, tt.wantType, c.Type)
			assert.Equal(t, "UTC", c.Timezone)
			assert.Equal(t, "medic", c.CreatedByName)
			assert.Equal(t, day, c.CaseDate)
			assert.Equal(t, now, c.TimeCreate)
			assert.Equal(t, 42, *c.Number)
		})
	}
}

func TestReduce_CreateCaseExisting(t *testing.T) {
	s := stateWith(syncedCase("c1", 3))

	next := Reduce(s, CreateCase{ID: "c1", Now: editNow})

	assert.Same(t, s.Cases["c1"], next.Cases["c1"])
}

func TestReduce_ModifyCase(t *testing.T) {
	original := syncedCase("c1", 5)
	original.SessionLastUpdate = peerSession
	s := stateWith(original)

	next := Reduce(s, ModifyCase{ID: "c1", Now: editNow, Changes: models.CaseChanges{
		Status:  ptr(models.CaseStatusClosed),
		Patient: &models.PatientChanges{FirstName: ptr("Anna")},
	}})

	c := next.Cases["c1"]
	require.NotNil(t, c)
	assert.Equal(t, int64(6), c.Version)
	assert.Equal(t, models.SyncStatusEditedPending, c.SyncStatus)
	assert.Equal(t, editNow, c.TimeLastUpdate)
	assert.Equal(t, editNow, *c.TimeClose)
	assert.Empty(t, c.SessionLastUpdate)
	assert.ElementsMatch(t, []string{models.PathStatus, models.PathPatientFirstName}, c.PendingFields)

	// Предыдущее состояние не изменено
	assert.Equal(t, int64(5), s.Cases["c1"].Version)
	assert.Equal(t, peerSession, s.Cases["c1"].SessionLastUpdate)
}

func TestReduce_ModifyCreatedPendingKeepsStatus(t *testing.T) {
	s := Reduce(InitialState(), CreateCase{ID: "c1", Now: editNow})

	next := Reduce(s, ModifyCase{ID: "c1", Now: editNow, Changes: models.CaseChanges{Notes: ptr("n")}})

	assert.Equal(t, models.SyncStatusCreatedPending, next.Cases["c1"].SyncStatus)
	assert.Equal(t, int64(1), next.Cases["c1"].Version)
}

func TestReduce_ModifyCaseNoop(t *testing.T) {
	s := stateWith(syncedCase("c1", 1))

	tests := []struct {
		name   string
		action ModifyCase
	}{
		{name: "missing case", action: ModifyCase{ID: "nope", Now: editNow, Changes: models.CaseChanges{Notes: ptr("x")}}},
		{name: "empty changes", action: ModifyCase{ID: "c1", Now: editNow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Reduce(s, tt.action)
			assert.Equal(t, s.Cases, next.Cases)
			assert.Same(t, s.Cases["c1"], next.Cases["c1"])
		})
	}
}

func TestReduce_ModifyCaseDateRevalidatesTimings(t *testing.T) {
	original := syncedCase("c1", 2)
	call := day.Add(10 * time.Hour)
	arrival := day.Add(11 * time.Hour)
	original.Timings = &models.Timings{Call: &call, Arrival: &arrival}
	original.Treatments = []models.Treatment{{ID: "t1", Phase: models.TimingCall, Time: day.Add(10*time.Hour + 30*time.Minute)}}
	s := stateWith(original)

	nextDay := day.Add(24 * time.Hour)
	next := Reduce(s, ModifyCase{ID: "c1", Now: editNow, Changes: models.CaseChanges{CaseDate: &nextDay}})

	c := next.Cases["c1"]
	assert.Equal(t, nextDay.Add(10*time.Hour), *c.Timings.Call)
	assert.Equal(t, nextDay.Add(11*time.Hour), *c.Timings.Arrival)
	assert.Equal(t, nextDay.Add(10*time.Hour+30*time.Minute), c.Treatments[0].Time)
	assert.ElementsMatch(t, []string{
		models.PathCaseDate,
		models.TimingPath(models.TimingCall),
		models.TimingPath(models.TimingArrival),
		models.PathTreatments,
	}, c.PendingFields)
}

func TestReduce_ModifyTimingClampsTreatments(t *testing.T) {
	original := syncedCase("c1", 2)
	call := day.Add(10 * time.Hour)
	original.Timings = &models.Timings{Call: &call}
	original.Treatments = []models.Treatment{{ID: "t1", Phase: models.TimingCall, Time: day.Add(12 * time.Hour)}}
	s := stateWith(original)

	arrival := day.Add(11 * time.Hour)
	next := Reduce(s, ModifyCase{ID: "c1", Now: editNow, Changes: models.CaseChanges{
		Timings: models.TimingsChanges{models.TimingArrival: &arrival},
	}})

	c := next.Cases["c1"]
	assert.Equal(t, arrival, c.Treatments[0].Time)
	assert.Contains(t, c.PendingFields, models.PathTreatments)
	assert.Equal(t, day.Add(12*time.Hour), original.Treatments[0].Time)
}

func TestReduce_StaleRemoteAfterLocalEdit(t *testing.T) {
	// Локально v5 -> v6 (pending), затем приходит устаревший снимок v5
	s := stateWith(syncedCase("c1", 5))
	s = Reduce(s, ModifyCase{ID: "c1", Now: editNow, Changes: models.CaseChanges{Notes: ptr("local")}})
	local := s.Cases["c1"]

	stale := syncedCase("c1", 5)
	stale.Notes = "remote"
	next := Reduce(s, SetCase{Case: stale, Options: peerOpts()})

	assert.Same(t, local, next.Cases["c1"])
	assert.Equal(t, int64(6), next.Cases["c1"].Version)
	assert.Equal(t, "local", next.Cases["c1"].Notes)
	assert.Equal(t, models.SyncStatusEditedPending, next.Cases["c1"].SyncStatus)
}

func TestReduce_NewerRemoteKeepsPendingStatus(t *testing.T) {
	s := stateWith(syncedCase("c1", 5))
	s = Reduce(s, ModifyCase{ID: "c1", Now: editNow, Changes: models.CaseChanges{Status: ptr(models.CaseStatusClosed)}})

	remote := syncedCase("c1", 7)
	remote.Status = models.CaseStatusArchived
	remote.Notes = "peer"
	next := Reduce(s, SetCase{Case: remote, Options: peerOpts()})

	c := next.Cases["c1"]
	assert.Equal(t, int64(7), c.Version)
	assert.Equal(t, models.CaseStatusClosed, c.Status)
	assert.Equal(t, "peer", c.Notes)
	assert.Equal(t, models.SyncStatusEditedPending, c.SyncStatus)
}

func TestReduce_SetCaseEcho(t *testing.T) {
	s := stateWith(syncedCase("c1", 1))

	next := Reduce(s, SetCase{Case: syncedCase("c1", 4), Options: merge.Options{LocalSessionID: localSession, OriginSessionID: localSession}})

	assert.Same(t, s.Cases["c1"], next.Cases["c1"])
}

func TestReduce_SetCaseIgnoresPendingDelete(t *testing.T) {
	s := Reduce(stateWith(syncedCase("c1", 1)), RemoveCase{ID: "c1"})

	next := Reduce(s, SetCase{Case: syncedCase("c1", 9), Options: peerOpts()})

	assert.NotContains(t, next.Cases, "c1")
	assert.Contains(t, next.Deleted, "c1")
}

func TestReduce_SetCases(t *testing.T) {
	s := stateWith(syncedCase("a", 3), syncedCase("b", 1))
	s.Deleted["d"] = syncedCase("d", 1)
	s.Loading = true

	next := Reduce(s, SetCases{
		Cases: models.CasesHash{
			"a": syncedCase("a", 2),
			"b": syncedCase("b", 2),
			"d": syncedCase("d", 2),
		},
		Options: merge.Options{LocalSessionID: localSession},
	})

	assert.False(t, next.Loading)
	assert.Same(t, s.Cases["a"], next.Cases["a"])
	assert.Equal(t, int64(2), next.Cases["b"].Version)
	assert.Contains(t, next.Cases, "d")
	assert.NotContains(t, next.Deleted, "d")
	assert.Contains(t, s.Deleted, "d")
}

func TestReduce_AckCases(t *testing.T) {
	s := stateWith(syncedCase("a", 3), syncedCase("b", 3))
	s = Reduce(s, ModifyCase{ID: "a", Now: editNow, Changes: models.CaseChanges{Notes: ptr("sent")}})
	s = Reduce(s, ModifyCase{ID: "b", Now: editNow, Changes: models.CaseChanges{Notes: ptr("sent")}})
	sent := map[string]int64{"a": 4, "b": 4}
	// b изменен еще раз, пока запрос был в полете
	s = Reduce(s, ModifyCase{ID: "b", Now: editNow, Changes: models.CaseChanges{Notes: ptr("newer")}})

	respA := syncedCase("a", 4)
	respA.Notes = "sent"
	respB := syncedCase("b", 4)
	respB.Notes = "sent"

	next := Reduce(s, AckCases{Cases: models.CasesHash{"a": respA, "b": respB}, SentVersions: sent})

	assert.Equal(t, models.SyncStatusSynced, next.Cases["a"].SyncStatus)
	assert.Empty(t, next.Cases["a"].PendingFields)
	assert.Equal(t, int64(4), next.Cases["a"].Version)

	assert.Same(t, s.Cases["b"], next.Cases["b"])
	assert.Equal(t, "newer", next.Cases["b"].Notes)
	assert.Equal(t, models.SyncStatusEditedPending, next.Cases["b"].SyncStatus)
}

func TestReduce_AckCasesForRemovedCase(t *testing.T) {
	s := Reduce(stateWith(syncedCase("a", 1)), RemoveCase{ID: "a"})

	next := Reduce(s, AckCases{Cases: models.CasesHash{"a": syncedCase("a", 1)}, SentVersions: map[string]int64{"a": 1}})

	assert.NotContains(t, next.Cases, "a")
}

func TestReduce_RemoveEraseDeleteSynced(t *testing.T) {
	s := stateWith(syncedCase("a", 1), syncedCase("b", 1))

	removed := Reduce(s, RemoveCase{ID: "a"})
	assert.NotContains(t, removed.Cases, "a")
	assert.Contains(t, removed.Deleted, "a")
	assert.True(t, removed.IsPendingDelete("a"))
	assert.Contains(t, s.Cases, "a")

	acked := Reduce(removed, DeleteSynced{ID: "a"})
	assert.False(t, acked.IsPendingDelete("a"))
	assert.Contains(t, acked.Deleted, "a")
	assert.True(t, removed.IsPendingDelete("a"))

	erased := Reduce(removed, EraseCase{ID: "a"})
	assert.NotContains(t, erased.Deleted, "a")
	assert.False(t, erased.IsPendingDelete("a"))

	erasedActive := Reduce(s, EraseCase{ID: "b"})
	assert.NotContains(t, erasedActive.Cases, "b")
	assert.Empty(t, erasedActive.PendingDeletes)

	missing := Reduce(s, RemoveCase{ID: "zzz"})
	assert.Equal(t, s, missing)
}

func TestReduce_DeletedCollection(t *testing.T) {
	s := stateWith(syncedCase("active", 1), syncedCase("local", 1))
	s = Reduce(s, RemoveCase{ID: "local"})
	s = Reduce(s, FetchDeletedStarted{})
	assert.True(t, s.DeletedLoading)

	failed := Reduce(s, FetchDeletedFailed{Err: "boom"})
	assert.False(t, failed.DeletedLoading)
	assert.Equal(t, "boom", failed.DeletedError)

	done := Reduce(failed, FetchDeletedDone{Cases: models.CasesHash{
		"server": syncedCase("server", 2),
		"active": syncedCase("active", 2),
	}})
	assert.False(t, done.DeletedLoading)
	assert.Empty(t, done.DeletedError)
	assert.Contains(t, done.Deleted, "server")
	assert.Contains(t, done.Deleted, "local")
	assert.NotContains(t, done.Deleted, "active")
}

func TestReduce_RestoreDeletedCase(t *testing.T) {
	s := Reduce(stateWith(syncedCase("a", 1)), RemoveCase{ID: "a"})
	restored := syncedCase("a", 2)
	restored.PendingFields = []string{"status"}

	next := Reduce(s, RestoreDeletedCase{Case: restored})

	require.Contains(t, next.Cases, "a")
	assert.Equal(t, int64(2), next.Cases["a"].Version)
	assert.Empty(t, next.Cases["a"].PendingFields)
	assert.NotContains(t, next.Deleted, "a")
	assert.False(t, next.IsPendingDelete("a"))
}

func TestReduce_Flags(t *testing.T) {
	s := InitialState()

	s = Reduce(s, FetchStarted{})
	assert.True(t, s.Loading)
	s = Reduce(s, FetchFailed{Err: "offline"})
	assert.False(t, s.Loading)
	assert.Equal(t, "offline", s.Error)

	s = Reduce(s, ClearError{})
	assert.Empty(t, s.Error)

	s = Reduce(s, SyncStarted{})
	assert.True(t, s.Syncing)
	s = Reduce(s, SyncFailed{})
	assert.False(t, s.Syncing)
	assert.Empty(t, s.Error, "muted failure is not surfaced")

	s = Reduce(s, SyncStarted{})
	s = Reduce(s, SyncFailed{Err: "Failed to update case\nbad bed"})
	assert.Equal(t, "Failed to update case\nbad bed", s.Error)

	s = Reduce(s, SyncStarted{})
	s = Reduce(s, SyncFinished{})
	assert.False(t, s.Syncing)

	s = Reduce(s, SetError{Err: "x"})
	assert.Equal(t, "x", s.Error)
}

func TestReduce_Reset(t *testing.T) {
	s := stateWith(syncedCase("a", 1))
	s.Syncing = true

	next := Reduce(s, Reset{Err: "expired"})

	assert.Empty(t, next.Cases)
	assert.NotNil(t, next.Cases)
	assert.False(t, next.Syncing)
	assert.Equal(t, "expired", next.Error)
}

type unknownAction struct{}

func (unknownAction) action() {}

func TestReduce_UnknownActionPanics(t *testing.T) {
	assert.Panics(t, func() { Reduce(InitialState(), unknownAction{}) })
}

func TestIsSyncTrigger(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{action: CreateCase{}, want: true},
		{action: ModifyCase{}, want: true},
		{action: RemoveCase{}, want: true},
		{action: SetCase{}, want: false},
		{action: EraseCase{}, want: false},
		{action: SyncFinished{}, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSyncTrigger(tt.action), "%T", tt.action)
	}
}
