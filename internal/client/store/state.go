// Package store хранит состояние кейсов клиента.
//
// Все изменения проходят через Store.Dispatch: действие сводится чистой
// функцией Reduce к новому State, после чего вызываются подписчики.
// Значения State и вложенные коллекции не изменяются на месте.
package store

import (
	"maps"

	"github.com/iudanet/casesync/internal/models"
)

// State состояние модуля кейсов
type State struct {
	// Cases активные кейсы
	Cases models.CasesHash
	// Deleted кейсы, удаленные локально или полученные с сервера как удаленные
	Deleted models.CasesHash
	// PendingDeletes ID кейсов, удаление которых еще не подтверждено сервером
	PendingDeletes map[string]struct{}

	Error        string
	DeletedError string

	Loading        bool
	DeletedLoading bool
	Syncing        bool
}

// InitialState возвращает пустое состояние.
func InitialState() State {
	return State{
		Cases:          models.CasesHash{},
		Deleted:        models.CasesHash{},
		PendingDeletes: map[string]struct{}{},
	}
}

// IsPendingDelete сообщает, ожидает ли кейс подтверждения удаления.
func (s State) IsPendingDelete(id string) bool {
	_, ok := s.PendingDeletes[id]
	return ok
}

func cloneSet(set map[string]struct{}) map[string]struct{} {
	if set == nil {
		return map[string]struct{}{}
	}
	return maps.Clone(set)
}
