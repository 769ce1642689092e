package models

import (
	"slices"
	"time"
)

// SyncStatus показывает, опережает ли локальное состояние записи
// последнее подтвержденное сервером состояние.
type SyncStatus int

const (
	SyncStatusSynced         SyncStatus = iota // нет неподтвержденных изменений
	SyncStatusEditedPending                    // локальные правки еще не отправлены
	SyncStatusCreatedPending                   // запись создана локально и еще не отправлена
)

// IsPending возвращает true, если у записи есть неподтвержденные локальные изменения.
func (s SyncStatus) IsPending() bool {
	return s != SyncStatusSynced
}

// String returns a human readable sync status.
func (s SyncStatus) String() string {
	switch s {
	case SyncStatusSynced:
		return "synced"
	case SyncStatusEditedPending:
		return "edited-pending"
	case SyncStatusCreatedPending:
		return "created-pending"
	default:
		return "unknown"
	}
}

// CaseStatus статус кейса
type CaseStatus string

const (
	CaseStatusOpen     CaseStatus = "OPEN"
	CaseStatusClosed   CaseStatus = "CLOSED"
	CaseStatusArchived CaseStatus = "ARCHIVED"
)

// CaseType тип кейса, определяется типом клиента при создании
type CaseType string

const (
	CaseTypePrehospital   CaseType = "PREHOSPITAL"
	CaseTypeFieldHospital CaseType = "FIELD_HOSPITAL"
)

// ClientType тип лицензии клиента
type ClientType string

const (
	ClientTypeField         ClientType = "CLIENT_FIELD"
	ClientTypeFieldHospital ClientType = "CLIENT_FIELD_HOSPITAL"
)

// CaseTypeFor возвращает тип кейса для заданного типа клиента.
func CaseTypeFor(clientType ClientType) CaseType {
	if clientType == ClientTypeFieldHospital {
		return CaseTypeFieldHospital
	}
	return CaseTypePrehospital
}

// RealmNormal обычная область видимости кейса
const RealmNormal = "NORMAL"

// DaysForDischarge количество дней, после которого открытый кейс считается просроченным к выписке
const DaysForDischarge = 12

// CasesHash коллекция кейсов по ID. Порядок не гарантируется.
type CasesHash map[string]*Case

// Case представляет запись ("кейс"), которую совместно редактируют несколько сессий.
// Значения в CasesHash считаются неизменяемыми: любое изменение начинается с Clone.
type Case struct {
	TimeCreate     time.Time  `json:"timeCreate"`
	TimeLastUpdate time.Time  `json:"timeLastUpdate"`
	CaseDate       time.Time  `json:"caseDate"` // CaseDate опорная дата, относительно которой валидируются тайминги
	TimeClose      *time.Time `json:"timeClose,omitempty"`
	Number         *int       `json:"number,omitempty"`

	Patient   *Patient   `json:"patient,omitempty"`
	Hospital  *Hospital  `json:"hospital,omitempty"`
	Timings   *Timings   `json:"timings,omitempty"`
	Transport *Transport `json:"caseTransport,omitempty"`
	Billing   *Billing   `json:"caseBilling,omitempty"`

	ID                string     `json:"id"`
	Status            CaseStatus `json:"status"`
	Type              CaseType   `json:"type"`
	Realm             string     `json:"realm,omitempty"`
	Timezone          string     `json:"timezone,omitempty"`
	CreatedByName     string     `json:"createdByName,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	SessionLastUpdate string     `json:"sessionLastUpdate,omitempty"` // SessionLastUpdate сессия, внесшая последнее удаленное изменение

	Treatments []Treatment `json:"treatments,omitempty"`

	// PendingFields пути полей, измененных локально и еще не подтвержденных сервером.
	// Хранится только на клиенте и никогда не уходит на сервер.
	PendingFields []string `json:"-"`

	Version    int64      `json:"version"`
	SyncStatus SyncStatus `json:"-"`
}

// Clone создает глубокую копию кейса
func (c *Case) Clone() *Case {
	if c == nil {
		return nil
	}
	clone := *c
	clone.TimeClose = cloneTime(c.TimeClose)
	if c.Number != nil {
		n := *c.Number
		clone.Number = &n
	}
	clone.Patient = c.Patient.Clone()
	clone.Hospital = c.Hospital.Clone()
	clone.Timings = c.Timings.Clone()
	clone.Transport = c.Transport.Clone()
	clone.Billing = c.Billing.Clone()
	clone.Treatments = slices.Clone(c.Treatments)
	clone.PendingFields = slices.Clone(c.PendingFields)
	return &clone
}

// HasPendingField проверяет, ожидает ли поле path подтверждения сервером.
func (c *Case) HasPendingField(path string) bool {
	return slices.Contains(c.PendingFields, path)
}

// AddPendingFields добавляет пути в PendingFields без дубликатов, сохраняя порядок.
func (c *Case) AddPendingFields(paths ...string) {
	for _, p := range paths {
		if !slices.Contains(c.PendingFields, p) {
			c.PendingFields = append(c.PendingFields, p)
		}
	}
}

// Treatment зависимая запись (вмешательство), привязанная к фазе между таймингами.
type Treatment struct {
	Time  time.Time `json:"time"`
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Phase TimingKey `json:"phase"` // Phase тайминг, после которого выполнено вмешательство
}

// Clone returns a copy of the case map. Case values are shared.
func (h CasesHash) Clone() CasesHash {
	out := make(CasesHash, len(h))
	for id, c := range h {
		out[id] = c
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
