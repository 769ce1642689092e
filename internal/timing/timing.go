// Package timing поддерживает клинические тайминги кейса и привязанные
// к ним вмешательства в допустимой временной последовательности.
package timing

import (
	"slices"
	"time"

	"github.com/iudanet/casesync/internal/models"
)

// ValidateCaseTimings пересчитывает тайминги после смены опорной даты кейса.
//
// Тайминги и вмешательства, не заданные явно в той же мутации (explicit),
// сдвигаются на разницу между новой и старой опорной датой. Затем неявные
// тайминги поджимаются так, чтобы последовательность не убывала и не
// начиналась раньше опорной даты. Явно заданные значения не меняются.
func ValidateCaseTimings(c *models.Case, previousAnchor time.Time, explicit ...models.TimingKey) *models.Case {
	next := c.Clone()
	delta := c.CaseDate.Sub(previousAnchor)

	if next.Timings != nil && delta != 0 {
		for _, key := range models.TimingKeys {
			if slices.Contains(explicit, key) {
				continue
			}
			if v := next.Timings.Get(key); v != nil {
				shifted := v.Add(delta)
				next.Timings.Set(key, &shifted)
			}
		}
	}

	if delta != 0 {
		for i, tr := range next.Treatments {
			if slices.Contains(explicit, tr.Phase) {
				continue
			}
			next.Treatments[i].Time = tr.Time.Add(delta)
		}
	}

	if next.Timings == nil {
		return next
	}

	// Восстанавливаем порядок: каждый неявный тайминг не раньше предыдущего
	lowest := next.CaseDate
	for _, key := range models.TimingKeys {
		v := next.Timings.Get(key)
		if v == nil {
			continue
		}
		if v.Before(lowest) && !slices.Contains(explicit, key) {
			clamped := lowest
			next.Timings.Set(key, &clamped)
			continue
		}
		if v.After(lowest) {
			lowest = *v
		}
	}

	return next
}

// ValidateTreatsOnCaseUpdate возвращает вмешательства кейса, время которых
// приведено в окно фазы, ограниченное таймингом key.
//
// Окно фазы P: [timing(P), первый заданный тайминг после P]. Затрагиваются
// только вмешательства, для которых key является нижней (P == key) или
// верхней границей окна. Время за пределами окна поджимается к ближайшей
// границе, вмешательства не удаляются. Функция детерминирована и идемпотентна.
func ValidateTreatsOnCaseUpdate(c *models.Case, key models.TimingKey) []models.Treatment {
	if len(c.Treatments) == 0 {
		return c.Treatments
	}

	out := slices.Clone(c.Treatments)
	for i, tr := range out {
		if !boundedBy(c.Timings, tr.Phase, key) {
			continue
		}
		lower, upper := window(c.Timings, tr.Phase)
		out[i].Time = clamp(tr.Time, lower, upper)
	}

	return out
}

// boundedBy сообщает, является ли key границей окна фазы phase.
func boundedBy(t *models.Timings, phase, key models.TimingKey) bool {
	pi, ki := phase.Index(), key.Index()
	if pi < 0 || ki < 0 {
		return false
	}
	if pi == ki {
		return true
	}
	if ki < pi {
		return false
	}
	// key верхняя граница, если между фазой и key нет заданных таймингов
	for _, between := range models.TimingKeys[pi+1 : ki] {
		if t.Get(between) != nil {
			return false
		}
	}
	return true
}

// window возвращает границы окна фазы; nil означает отсутствие границы.
func window(t *models.Timings, phase models.TimingKey) (lower, upper *time.Time) {
	lower = t.Get(phase)
	for _, key := range models.TimingKeys[phase.Index()+1:] {
		if v := t.Get(key); v != nil {
			return lower, v
		}
	}
	return lower, nil
}

func clamp(v time.Time, lower, upper *time.Time) time.Time {
	if lower != nil && v.Before(*lower) {
		v = *lower
	}
	if upper != nil && v.After(*upper) {
		v = *upper
	}
	return v
}
