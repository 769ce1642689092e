package store

import (
	"github.com/iudanet/casesync/internal/models"
)

// Diff сравнивает коллекции по указателям: значения неизменяемы,
// поэтому измененный кейс всегда новый объект.
func Diff(prev, next models.CasesHash) (changed []*models.Case, removed []string) {
	for id, c := range next {
		if prev[id] != c {
			changed = append(changed, c)
		}
	}
	for id := range prev {
		if _, ok := next[id]; !ok {
			removed = append(removed, id)
		}
	}
	return changed, removed
}

// DiffSet возвращает добавленные и удаленные элементы множества.
func DiffSet(prev, next map[string]struct{}) (added, removed []string) {
	for id := range next {
		if _, ok := prev[id]; !ok {
			added = append(added, id)
		}
	}
	for id := range prev {
		if _, ok := next[id]; !ok {
			removed = append(removed, id)
		}
	}
	return added, removed
}
