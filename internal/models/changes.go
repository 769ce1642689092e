package models

import (
	"sort"
	"time"
)

// Пути изменяемых полей кейса. Используются в PendingFields и при слиянии.
const (
	PathStatus     = "status"
	PathNumber     = "number"
	PathCaseDate   = "caseDate"
	PathNotes      = "notes"
	PathTreatments = "treatments"

	PathPatientFirstName    = "patient.firstName"
	PathPatientLastName     = "patient.lastName"
	PathPatientDateOfBirth  = "patient.dateOfBirth"
	PathPatientSex          = "patient.sex"
	PathPatientKinName      = "patient.kinName"
	PathPatientKinPhone     = "patient.kinPhone"
	PathPatientCustomFields = "patient.customFields"

	PathHospitalName       = "hospital.name"
	PathHospitalDepartment = "hospital.department"
	PathHospitalBed        = "hospital.bed"

	PathTransportMode        = "caseTransport.mode"
	PathTransportDestination = "caseTransport.destination"
	PathTransportPriority    = "caseTransport.priority"

	PathBillingCode         = "caseBilling.code"
	PathBillingPayer        = "caseBilling.payer"
	PathBillingPolicyNumber = "caseBilling.policyNumber"

	timingsPathPrefix = "timings."
)

// TimingPath возвращает путь поля тайминга.
func TimingPath(key TimingKey) string {
	return timingsPathPrefix + string(key)
}

// CaseChanges изменяемое подмножество полей кейса.
// nil означает "поле не менялось".
type CaseChanges struct {
	Status     *CaseStatus
	Number     *int
	CaseDate   *time.Time
	Notes      *string
	Treatments *[]Treatment

	Patient   *PatientChanges
	Hospital  *HospitalChanges
	Timings   TimingsChanges
	Transport *TransportChanges
	Billing   *BillingChanges
}

// PatientChanges изменения данных пациента
type PatientChanges struct {
	FirstName    *string
	LastName     *string
	DateOfBirth  *time.Time
	Sex          *string
	KinName      *string
	KinPhone     *string
	CustomFields *[]CustomField
}

// HospitalChanges изменения размещения
type HospitalChanges struct {
	Name       *string
	Department *string
	Bed        *string
}

// TimingsChanges изменения таймингов; значение nil очищает тайминг.
type TimingsChanges map[TimingKey]*time.Time

// TransportChanges изменения транспортировки
type TransportChanges struct {
	Mode        *string
	Destination *string
	Priority    *string
}

// BillingChanges изменения платежных данных
type BillingChanges struct {
	Code         *string
	Payer        *string
	PolicyNumber *string
}

// RootChanged сообщает, затрагивает ли изменение корневые поля кейса (включая тайминги).
func (ch CaseChanges) RootChanged() bool {
	return ch.Status != nil || ch.Number != nil || ch.CaseDate != nil ||
		ch.Notes != nil || ch.Treatments != nil || len(ch.Timings) > 0
}

// IsEmpty сообщает, что изменение ничего не меняет.
func (ch CaseChanges) IsEmpty() bool {
	return len(ch.Paths()) == 0
}

// Paths возвращает отсортированный список путей полей, затронутых изменением.
func (ch CaseChanges) Paths() []string {
	var paths []string
	add := func(set bool, path string) {
		if set {
			paths = append(paths, path)
		}
	}

	add(ch.Status != nil, PathStatus)
	add(ch.Number != nil, PathNumber)
	add(ch.CaseDate != nil, PathCaseDate)
	add(ch.Notes != nil, PathNotes)
	add(ch.Treatments != nil, PathTreatments)

	if p := ch.Patient; p != nil {
		add(p.FirstName != nil, PathPatientFirstName)
		add(p.LastName != nil, PathPatientLastName)
		add(p.DateOfBirth != nil, PathPatientDateOfBirth)
		add(p.Sex != nil, PathPatientSex)
		add(p.KinName != nil, PathPatientKinName)
		add(p.KinPhone != nil, PathPatientKinPhone)
		add(p.CustomFields != nil, PathPatientCustomFields)
	}
	if h := ch.Hospital; h != nil {
		add(h.Name != nil, PathHospitalName)
		add(h.Department != nil, PathHospitalDepartment)
		add(h.Bed != nil, PathHospitalBed)
	}
	for key := range ch.Timings {
		paths = append(paths, TimingPath(key))
	}
	if t := ch.Transport; t != nil {
		add(t.Mode != nil, PathTransportMode)
		add(t.Destination != nil, PathTransportDestination)
		add(t.Priority != nil, PathTransportPriority)
	}
	if b := ch.Billing; b != nil {
		add(b.Code != nil, PathBillingCode)
		add(b.Payer != nil, PathBillingPayer)
		add(b.PolicyNumber != nil, PathBillingPolicyNumber)
	}

	sort.Strings(paths)
	return paths
}

// ChangedTimingKeys возвращает измененные тайминги в порядке их следования.
func (ch CaseChanges) ChangedTimingKeys() []TimingKey {
	keys := make([]TimingKey, 0, len(ch.Timings))
	for _, key := range TimingKeys {
		if _, ok := ch.Timings[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}
