package store

import (
	"time"

	"github.com/iudanet/casesync/internal/merge"
	"github.com/iudanet/casesync/internal/models"
)

// Action действие над состоянием кейсов.
// Набор действий закрыт: реализовать Action можно только в этом пакете.
type Action interface {
	action()
}

// FetchStarted начало загрузки всех кейсов
type FetchStarted struct{}

// FetchFailed ошибка загрузки кейсов
type FetchFailed struct {
	Err string
}

// SetCases сливает коллекцию снимков с текущими кейсами.
// Записи из Force заменяют локальные без сравнения версий.
type SetCases struct {
	Cases   models.CasesHash
	Force   models.CasesHash
	Options merge.Options
}

// SetCase сливает один снимок, полученный от сервера или из push-уведомления.
type SetCase struct {
	Case    *models.Case
	Options merge.Options
}

// AckCases применяет ответы сервера на отправленные кейсы.
// Ответ заменяет локальный кейс, только если его версия не изменилась
// с момента отправки (SentVersions); иначе ответ сливается обычным образом.
type AckCases struct {
	Cases        models.CasesHash
	SentVersions map[string]int64
}

// CreateCase создает новый кейс
type CreateCase struct {
	Now        time.Time
	Number     *int
	ID         string
	UserName   string
	ClientType models.ClientType
}

// ModifyCase применяет локальную правку к кейсу
type ModifyCase struct {
	Now     time.Time
	ID      string
	Changes models.CaseChanges
}

// RemoveCase мягко удаляет кейс: переносит в Deleted и ставит в очередь на DELETE.
type RemoveCase struct {
	ID string
}

// EraseCase удаляет кейс отовсюду без обращения к серверу.
type EraseCase struct {
	ID string
}

// DeleteSynced подтверждение удаления сервером
type DeleteSynced struct {
	ID string
}

// FetchDeletedStarted начало загрузки удаленных кейсов
type FetchDeletedStarted struct{}

// FetchDeletedDone удаленные кейсы получены
type FetchDeletedDone struct {
	Cases models.CasesHash
}

// FetchDeletedFailed ошибка загрузки удаленных кейсов
type FetchDeletedFailed struct {
	Err string
}

// RestoreDeletedCase возвращает восстановленный сервером кейс в активные.
type RestoreDeletedCase struct {
	Case *models.Case
}

// SyncStarted начало отправки изменений
type SyncStarted struct{}

// SyncFinished отправка завершена
type SyncFinished struct{}

// SyncFailed отправка завершилась ошибкой; пустой Err не показывается пользователю.
type SyncFailed struct {
	Err string
}

// SetError устанавливает ошибку для показа пользователю
type SetError struct {
	Err string
}

// ClearError скрывает ошибку
type ClearError struct{}

// Reset возвращает модуль в начальное состояние
type Reset struct {
	Err string
}

func (FetchStarted) action()        {}
func (FetchFailed) action()         {}
func (SetCases) action()            {}
func (SetCase) action()             {}
func (AckCases) action()            {}
func (CreateCase) action()          {}
func (ModifyCase) action()          {}
func (RemoveCase) action()          {}
func (EraseCase) action()           {}
func (DeleteSynced) action()        {}
func (FetchDeletedStarted) action() {}
func (FetchDeletedDone) action()    {}
func (FetchDeletedFailed) action()  {}
func (RestoreDeletedCase) action()  {}
func (SyncStarted) action()         {}
func (SyncFinished) action()        {}
func (SyncFailed) action()          {}
func (SetError) action()            {}
func (ClearError) action()          {}
func (Reset) action()               {}

// IsSyncTrigger сообщает, порождает ли действие изменения для отправки на сервер.
func IsSyncTrigger(a Action) bool {
	switch a.(type) {
	case CreateCase, ModifyCase, RemoveCase:
		return true
	default:
		return false
	}
}
