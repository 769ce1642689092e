package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/iudanet/casesync/internal/merge"
	"github.com/iudanet/casesync/internal/models"
	"github.com/iudanet/casesync/internal/timing"
)

// Reduce вычисляет следующее состояние. Функция чистая: s не изменяется.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case FetchStarted:
		s.Loading = true
		return s
	case FetchFailed:
		s.Loading = false
		s.Error = a.Err
		return s
	case SetCases:
		return reduceSetCases(s, a)
	case SetCase:
		return reduceSetCase(s, a)
	case AckCases:
		return reduceAckCases(s, a)
	case CreateCase:
		return reduceCreateCase(s, a)
	case ModifyCase:
		return reduceModifyCase(s, a)
	case RemoveCase:
		return reduceRemoveCase(s, a)
	case EraseCase:
		return reduceEraseCase(s, a)
	case DeleteSynced:
		if !s.IsPendingDelete(a.ID) {
			return s
		}
		s.PendingDeletes = cloneSet(s.PendingDeletes)
		delete(s.PendingDeletes, a.ID)
		return s
	case FetchDeletedStarted:
		s.DeletedLoading = true
		return s
	case FetchDeletedDone:
		return reduceFetchDeletedDone(s, a)
	case FetchDeletedFailed:
		s.DeletedLoading = false
		s.DeletedError = a.Err
		return s
	case RestoreDeletedCase:
		return reduceRestoreDeletedCase(s, a)
	case SyncStarted:
		s.Syncing = true
		return s
	case SyncFinished:
		s.Syncing = false
		return s
	case SyncFailed:
		s.Syncing = false
		if a.Err != "" {
			s.Error = a.Err
		}
		return s
	case SetError:
		s.Error = a.Err
		return s
	case ClearError:
		s.Error = ""
		s.DeletedError = ""
		return s
	case Reset:
		next := InitialState()
		next.Error = a.Err
		return next
	default:
		panic(fmt.Sprintf("store: unhandled action %T", a))
	}
}

func reduceSetCases(s State, a SetCases) State {
	incoming := withoutPendingDeletes(s, a.Cases)
	force := withoutPendingDeletes(s, a.Force)

	s.Cases = merge.MergeCollection(incoming, s.Cases, force, a.Options)
	s.Deleted = withoutKeys(s.Deleted, incoming, force)
	s.Loading = false
	return s
}

func reduceSetCase(s State, a SetCase) State {
	if a.Case == nil || s.IsPendingDelete(a.Case.ID) {
		return s
	}
	current := s.Cases[a.Case.ID]
	merged := merge.MergeCase(a.Case, current, a.Options)
	if merged == current {
		return s
	}

	s.Cases = s.Cases.Clone()
	s.Cases[merged.ID] = merged
	s.Deleted = withoutKeys(s.Deleted, models.CasesHash{merged.ID: merged})
	return s
}

func reduceAckCases(s State, a AckCases) State {
	var cases models.CasesHash
	for id, resp := range a.Cases {
		current := s.Cases[id]
		if resp == nil || current == nil {
			// кейс удален локально, пока запрос был в полете
			continue
		}

		var next *models.Case
		if sent, ok := a.SentVersions[id]; ok && current.Version == sent {
			next = resp.Clone()
			next.PendingFields = nil
			next.SyncStatus = models.SyncStatusSynced
			next.SessionLastUpdate = ""
		} else {
			next = merge.MergeCase(resp, current, merge.Options{})
		}
		if next == current {
			continue
		}

		if cases == nil {
			cases = s.Cases.Clone()
		}
		cases[id] = next
	}
	if cases != nil {
		s.Cases = cases
	}
	return s
}

func reduceCreateCase(s State, a CreateCase) State {
	if _, exists := s.Cases[a.ID]; exists || a.ID == "" {
		return s
	}

	now := a.Now
	c := &models.Case{
		ID:             a.ID,
		Version:        0,
		SyncStatus:     models.SyncStatusCreatedPending,
		Status:         models.CaseStatusOpen,
		Type:           models.CaseTypeFor(a.ClientType),
		Realm:          models.RealmNormal,
		Timezone:       now.Location().String(),
		CreatedByName:  a.UserName,
		TimeCreate:     now,
		TimeLastUpdate: now,
		CaseDate:       startOfDay(now),
	}
	if a.Number != nil {
		n := *a.Number
		c.Number = &n
	}

	s.Cases = s.Cases.Clone()
	s.Cases[c.ID] = c
	return s
}

func reduceModifyCase(s State, a ModifyCase) State {
	current := s.Cases[a.ID]
	if current == nil || a.Changes.IsEmpty() {
		return s
	}

	now := a.Now
	next := merge.ApplyChanges(current, a.Changes, now)
	next.Version = merge.NextVersion(current)
	next.TimeLastUpdate = now
	next.SessionLastUpdate = ""
	if current.SyncStatus == models.SyncStatusSynced {
		next.SyncStatus = models.SyncStatusEditedPending
	}
	next.AddPendingFields(a.Changes.Paths()...)

	if a.Changes.Status != nil && *a.Changes.Status == models.CaseStatusClosed &&
		current.Status != models.CaseStatusClosed {
		next.TimeClose = &now
	}

	caseDateChanged := a.Changes.CaseDate != nil && !a.Changes.CaseDate.Equal(current.CaseDate)
	if caseDateChanged {
		next = timing.ValidateCaseTimings(next, current.CaseDate, a.Changes.ChangedTimingKeys()...)
	}

	changedTimings := a.Changes.ChangedTimingKeys()
	for _, key := range models.TimingKeys {
		if caseDateChanged || slices.Contains(changedTimings, key) {
			next.Treatments = timing.ValidateTreatsOnCaseUpdate(next, key)
		}
	}

	// Производные изменения тоже должны пережить слияние со снимком сервера
	for _, key := range models.TimingKeys {
		if !timeEqual(current.Timings.Get(key), next.Timings.Get(key)) {
			next.AddPendingFields(models.TimingPath(key))
		}
	}
	if !slices.Equal(current.Treatments, next.Treatments) {
		next.AddPendingFields(models.PathTreatments)
	}

	s.Cases = s.Cases.Clone()
	s.Cases[next.ID] = next
	return s
}

func reduceRemoveCase(s State, a RemoveCase) State {
	current := s.Cases[a.ID]
	if current == nil {
		return s
	}

	s.Cases = s.Cases.Clone()
	delete(s.Cases, a.ID)
	s.Deleted = s.Deleted.Clone()
	s.Deleted[a.ID] = current
	s.PendingDeletes = cloneSet(s.PendingDeletes)
	s.PendingDeletes[a.ID] = struct{}{}
	return s
}

func reduceEraseCase(s State, a EraseCase) State {
	_, inCases := s.Cases[a.ID]
	_, inDeleted := s.Deleted[a.ID]
	if !inCases && !inDeleted && !s.IsPendingDelete(a.ID) {
		return s
	}

	if inCases {
		s.Cases = s.Cases.Clone()
		delete(s.Cases, a.ID)
	}
	if inDeleted {
		s.Deleted = s.Deleted.Clone()
		delete(s.Deleted, a.ID)
	}
	if s.IsPendingDelete(a.ID) {
		s.PendingDeletes = cloneSet(s.PendingDeletes)
		delete(s.PendingDeletes, a.ID)
	}
	return s
}

func reduceFetchDeletedDone(s State, a FetchDeletedDone) State {
	deleted := make(models.CasesHash, len(a.Cases))
	for id, c := range a.Cases {
		if c == nil {
			continue
		}
		if _, active := s.Cases[id]; active {
			continue
		}
		deleted[id] = c.Clone()
	}
	// Локальные удаления, еще не дошедшие до сервера, не теряем
	for id := range s.PendingDeletes {
		if c, ok := s.Deleted[id]; ok {
			deleted[id] = c
		}
	}

	s.Deleted = deleted
	s.DeletedLoading = false
	s.DeletedError = ""
	return s
}

func reduceRestoreDeletedCase(s State, a RestoreDeletedCase) State {
	if a.Case == nil {
		return s
	}
	restored := a.Case.Clone()
	restored.PendingFields = nil
	restored.SyncStatus = models.SyncStatusSynced

	s.Cases = s.Cases.Clone()
	s.Cases[restored.ID] = restored
	s.Deleted = withoutKeys(s.Deleted, models.CasesHash{restored.ID: restored})
	if s.IsPendingDelete(restored.ID) {
		s.PendingDeletes = cloneSet(s.PendingDeletes)
		delete(s.PendingDeletes, restored.ID)
	}
	return s
}

// withoutPendingDeletes отбрасывает снимки кейсов, удаление которых еще не отправлено.
func withoutPendingDeletes(s State, cases models.CasesHash) models.CasesHash {
	if len(s.PendingDeletes) == 0 {
		return cases
	}
	var out models.CasesHash
	for id, c := range cases {
		if s.IsPendingDelete(id) {
			continue
		}
		if out == nil {
			out = make(models.CasesHash, len(cases))
		}
		out[id] = c
	}
	return out
}

// withoutKeys возвращает h без ключей из sets; h не изменяется.
func withoutKeys(h models.CasesHash, sets ...models.CasesHash) models.CasesHash {
	var out models.CasesHash
	for _, set := range sets {
		for id := range set {
			if _, ok := h[id]; !ok {
				continue
			}
			if out == nil {
				out = h.Clone()
			}
			delete(out, id)
		}
	}
	if out == nil {
		return h
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
