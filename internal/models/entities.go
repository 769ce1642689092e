package models

import (
	"slices"
	"time"
)

// TimingKey имя клинического тайминга кейса
type TimingKey string

const (
	TimingInjury    TimingKey = "injury"
	TimingCall      TimingKey = "call"
	TimingArrival   TimingKey = "arrival"
	TimingDeparture TimingKey = "departure"
	TimingHandover  TimingKey = "handover"
)

// TimingKeys тайминги в порядке их следования во времени.
var TimingKeys = []TimingKey{
	TimingInjury,
	TimingCall,
	TimingArrival,
	TimingDeparture,
	TimingHandover,
}

// Index возвращает позицию тайминга в последовательности или -1.
func (k TimingKey) Index() int {
	return slices.Index(TimingKeys, k)
}

// CustomField произвольное поле пациента
type CustomField struct {
	FieldName string `json:"fieldName"`
	Value     string `json:"value"`
}

// Patient данные пациента
type Patient struct {
	TimeLastUpdate *time.Time    `json:"timeLastUpdate,omitempty"`
	DateOfBirth    *time.Time    `json:"dateOfBirth,omitempty"`
	ID             string        `json:"id,omitempty"`
	FirstName      string        `json:"firstName,omitempty"`
	LastName       string        `json:"lastName,omitempty"`
	Sex            string        `json:"sex,omitempty"`
	KinName        string        `json:"kinName,omitempty"`
	KinPhone       string        `json:"kinPhone,omitempty"`
	CustomFields   []CustomField `json:"customFields,omitempty"`
}

// Patient form fields, used by completeness checks.
const (
	PatientFieldFirstName   = "firstName"
	PatientFieldLastName    = "lastName"
	PatientFieldDateOfBirth = "dateOfBirth"
	PatientFieldSex         = "sex"
	PatientFieldKinName     = "kinName"
	PatientFieldKinPhone    = "kinPhone"
)

// PatientFormFields поля формы пациента в порядке отображения
var PatientFormFields = []string{
	PatientFieldFirstName,
	PatientFieldLastName,
	PatientFieldDateOfBirth,
	PatientFieldSex,
	PatientFieldKinName,
	PatientFieldKinPhone,
}

// FieldSet сообщает, заполнено ли поле формы пациента.
func (p *Patient) FieldSet(field string) bool {
	if p == nil {
		return false
	}
	switch field {
	case PatientFieldFirstName:
		return p.FirstName != ""
	case PatientFieldLastName:
		return p.LastName != ""
	case PatientFieldDateOfBirth:
		return p.DateOfBirth != nil
	case PatientFieldSex:
		return p.Sex != ""
	case PatientFieldKinName:
		return p.KinName != ""
	case PatientFieldKinPhone:
		return p.KinPhone != ""
	default:
		return false
	}
}

// Clone создает глубокую копию
func (p *Patient) Clone() *Patient {
	if p == nil {
		return nil
	}
	clone := *p
	clone.TimeLastUpdate = cloneTime(p.TimeLastUpdate)
	clone.DateOfBirth = cloneTime(p.DateOfBirth)
	clone.CustomFields = slices.Clone(p.CustomFields)
	return &clone
}

// Hospital размещение пациента в стационаре
type Hospital struct {
	TimeLastUpdate *time.Time `json:"timeLastUpdate,omitempty"`
	Name           string     `json:"name,omitempty"`
	Department     string     `json:"department,omitempty"`
	Bed            string     `json:"bed,omitempty"`
}

// Clone создает глубокую копию
func (h *Hospital) Clone() *Hospital {
	if h == nil {
		return nil
	}
	clone := *h
	clone.TimeLastUpdate = cloneTime(h.TimeLastUpdate)
	return &clone
}

// Timings клинические тайминги кейса
type Timings struct {
	TimeLastUpdate *time.Time `json:"timeLastUpdate,omitempty"`
	Injury         *time.Time `json:"injury,omitempty"`
	Call           *time.Time `json:"call,omitempty"`
	Arrival        *time.Time `json:"arrival,omitempty"`
	Departure      *time.Time `json:"departure,omitempty"`
	Handover       *time.Time `json:"handover,omitempty"`
}

// Get возвращает значение тайминга по ключу (nil если не задан).
func (t *Timings) Get(key TimingKey) *time.Time {
	if t == nil {
		return nil
	}
	switch key {
	case TimingInjury:
		return t.Injury
	case TimingCall:
		return t.Call
	case TimingArrival:
		return t.Arrival
	case TimingDeparture:
		return t.Departure
	case TimingHandover:
		return t.Handover
	default:
		return nil
	}
}

// Set устанавливает значение тайминга по ключу.
func (t *Timings) Set(key TimingKey, value *time.Time) {
	value = cloneTime(value)
	switch key {
	case TimingInjury:
		t.Injury = value
	case TimingCall:
		t.Call = value
	case TimingArrival:
		t.Arrival = value
	case TimingDeparture:
		t.Departure = value
	case TimingHandover:
		t.Handover = value
	}
}

// Clone создает глубокую копию
func (t *Timings) Clone() *Timings {
	if t == nil {
		return nil
	}
	return &Timings{
		TimeLastUpdate: cloneTime(t.TimeLastUpdate),
		Injury:         cloneTime(t.Injury),
		Call:           cloneTime(t.Call),
		Arrival:        cloneTime(t.Arrival),
		Departure:      cloneTime(t.Departure),
		Handover:       cloneTime(t.Handover),
	}
}

// Transport данные транспортировки
type Transport struct {
	TimeLastUpdate *time.Time `json:"timeLastUpdate,omitempty"`
	Mode           string     `json:"mode,omitempty"`
	Destination    string     `json:"destination,omitempty"`
	Priority       string     `json:"priority,omitempty"`
}

// Clone создает глубокую копию
func (t *Transport) Clone() *Transport {
	if t == nil {
		return nil
	}
	clone := *t
	clone.TimeLastUpdate = cloneTime(t.TimeLastUpdate)
	return &clone
}

// Billing платежные данные кейса
type Billing struct {
	TimeLastUpdate *time.Time `json:"timeLastUpdate,omitempty"`
	Code           string     `json:"code,omitempty"`
	Payer          string     `json:"payer,omitempty"`
	PolicyNumber   string     `json:"policyNumber,omitempty"`
}

// Clone создает глубокую копию
func (b *Billing) Clone() *Billing {
	if b == nil {
		return nil
	}
	clone := *b
	clone.TimeLastUpdate = cloneTime(b.TimeLastUpdate)
	return &clone
}
