package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/casesync/internal/models"
)

func TestStore_DispatchNotifiesListeners(t *testing.T) {
	s := New(State{})

	var got []Action
	var prevCount, nextCount int
	unsubscribe := s.Subscribe(func(a Action, prev, next State) {
		got = append(got, a)
		prevCount = len(prev.Cases)
		nextCount = len(next.Cases)
	})

	s.Dispatch(CreateCase{ID: "c1", Now: editNow})

	require.Len(t, got, 1)
	assert.IsType(t, CreateCase{}, got[0])
	assert.Equal(t, 0, prevCount)
	assert.Equal(t, 1, nextCount)
	assert.Contains(t, s.State().Cases, "c1")

	unsubscribe()
	s.Dispatch(RemoveCase{ID: "c1"})
	assert.Len(t, got, 1)
}

func TestStore_ListenerCanDispatch(t *testing.T) {
	s := New(InitialState())

	s.Subscribe(func(a Action, _, _ State) {
		if _, ok := a.(CreateCase); ok {
			s.Dispatch(ModifyCase{ID: "c1", Now: editNow, Changes: models.CaseChanges{Notes: ptr("auto")}})
		}
	})

	s.Dispatch(CreateCase{ID: "c1", Now: editNow})

	assert.Equal(t, "auto", s.State().Cases["c1"].Notes)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := New(InitialState())
	s.Dispatch(CreateCase{ID: "c1", Now: editNow})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(ModifyCase{ID: "c1", Now: editNow, Changes: models.CaseChanges{Notes: ptr("x")}})
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), s.State().Cases["c1"].Version)
}

func TestStore_NewFillsEmptyCollections(t *testing.T) {
	s := New(State{})

	st := s.State()
	assert.NotNil(t, st.Cases)
	assert.NotNil(t, st.Deleted)
	assert.NotNil(t, st.PendingDeletes)
}
