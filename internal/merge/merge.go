// Package merge содержит чистые функции версионирования и слияния кейсов:
// локальные неподтвержденные правки накладываются поверх более новых
// снимков сервера, устаревшие снимки и эхо собственных записей отбрасываются.
package merge

import (
	"slices"

	"github.com/iudanet/casesync/internal/models"
	"github.com/iudanet/casesync/internal/timing"
)

// Options описывает происхождение входящего снимка.
type Options struct {
	// LocalSessionID идентификатор текущей сессии
	LocalSessionID string
	// OriginSessionID сессия, создавшая входящий снимок (пусто для ответов REST)
	OriginSessionID string
	// IsLocalEcho явно помечает снимок как эхо собственной записи
	IsLocalEcho bool
}

func (o Options) isEcho() bool {
	if o.IsLocalEcho {
		return true
	}
	return o.OriginSessionID != "" && o.OriginSessionID == o.LocalSessionID
}

func (o Options) remoteOrigin() string {
	if o.OriginSessionID == o.LocalSessionID {
		return ""
	}
	return o.OriginSessionID
}

// NextVersion возвращает следующую локальную версию кейса.
func NextVersion(c *models.Case) int64 {
	return c.Version + 1
}

// MergeCase сливает входящий снимок incoming с текущим состоянием current.
//
// Более высокая версия побеждает, но поля из current.PendingFields
// переносятся из current поверх входящего снимка. Эхо собственной сессии
// и снимки с версией не выше текущей возвращают current без изменений.
// Результат всегда новый объект либо сам current.
func MergeCase(incoming, current *models.Case, opts Options) *models.Case {
	if incoming == nil {
		return current
	}
	if current == nil {
		merged := incoming.Clone()
		merged.PendingFields = nil
		merged.SyncStatus = models.SyncStatusSynced
		merged.SessionLastUpdate = opts.remoteOrigin()
		return merged
	}
	if opts.isEcho() {
		return current
	}
	if incoming.Version <= current.Version {
		return current
	}

	merged := incoming.Clone()
	merged.PendingFields = nil
	merged.SyncStatus = models.SyncStatusSynced
	merged.SessionLastUpdate = opts.remoteOrigin()

	if current.SyncStatus.IsPending() {
		// Поверх снимка сервера накладываем неподтвержденные локальные правки
		for _, path := range current.PendingFields {
			if copyField(merged, current, path) {
				merged.AddPendingFields(path)
			}
		}
		if len(merged.PendingFields) > 0 {
			merged = revalidateTimings(merged, current)
			merged.SyncStatus = models.SyncStatusEditedPending
			if current.TimeLastUpdate.After(merged.TimeLastUpdate) {
				merged.TimeLastUpdate = current.TimeLastUpdate
			}
		}
	}

	return merged
}

// revalidateTimings восстанавливает последовательность таймингов после
// наложения локальных правок на снимок с другой опорной датой или другими
// соседними таймингами. Неподтвержденные тайминги заданы относительно
// current.CaseDate: они сдвигаются вместе с опорной датой и считаются явными.
// Поправленные значения становятся неподтвержденными.
func revalidateTimings(merged, current *models.Case) *models.Case {
	var pendingKeys []models.TimingKey
	for _, key := range models.TimingKeys {
		if merged.HasPendingField(models.TimingPath(key)) {
			pendingKeys = append(pendingKeys, key)
		}
	}
	anchorMoved := !merged.CaseDate.Equal(current.CaseDate)
	if len(pendingKeys) == 0 && !anchorMoved {
		return merged
	}

	before := merged
	next := merged.Clone()
	if delta := next.CaseDate.Sub(current.CaseDate); delta != 0 {
		for _, key := range pendingKeys {
			if v := next.Timings.Get(key); v != nil {
				shifted := v.Add(delta)
				next.Timings.Set(key, &shifted)
			}
		}
		if next.HasPendingField(models.PathTreatments) {
			for i := range next.Treatments {
				next.Treatments[i].Time = next.Treatments[i].Time.Add(delta)
			}
		}
	}

	// Опорная дата уже новая, поэтому здесь только поджатие
	next = timing.ValidateCaseTimings(next, next.CaseDate, pendingKeys...)
	for _, key := range models.TimingKeys {
		next.Treatments = timing.ValidateTreatsOnCaseUpdate(next, key)
	}

	for _, key := range models.TimingKeys {
		if !timeEqual(before.Timings.Get(key), next.Timings.Get(key)) {
			next.AddPendingFields(models.TimingPath(key))
		}
	}
	if !slices.Equal(before.Treatments, next.Treatments) {
		next.AddPendingFields(models.PathTreatments)
	}
	return next
}

// MergeCollection применяет MergeCase к объединению ключей incoming и current.
// Записи из force берутся как есть, без сравнения версий.
// Исходные коллекции не изменяются.
func MergeCollection(incoming, current, force models.CasesHash, opts Options) models.CasesHash {
	result := make(models.CasesHash, len(current)+len(incoming))
	for id, c := range current {
		result[id] = c
	}
	for id, c := range incoming {
		result[id] = MergeCase(c, current[id], opts)
	}
	for id, c := range force {
		if c == nil {
			continue
		}
		result[id] = c.Clone()
	}
	return result
}
