package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestCase_Clone(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	arrival := now.Add(time.Hour)

	original := &Case{
		ID:         "case-1",
		Version:    7,
		Number:     intPtr(42),
		TimeClose:  &now,
		Status:     CaseStatusOpen,
		SyncStatus: SyncStatusEditedPending,
		Patient: &Patient{
			FirstName:    "Anna",
			CustomFields: []CustomField{{FieldName: "legalStatus", Value: "NA"}},
		},
		Timings:       &Timings{Arrival: &arrival},
		Treatments:    []Treatment{{ID: "t1", Name: "IV", Time: now, Phase: TimingArrival}},
		PendingFields: []string{PathStatus},
	}

	clone := original.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, original, clone)

	// Изменения клона не должны влиять на оригинал
	*clone.Number = 43
	clone.Patient.FirstName = "Olga"
	clone.Patient.CustomFields[0].Value = "changed"
	*clone.Timings.Arrival = now
	clone.Treatments[0].Name = "changed"
	clone.PendingFields[0] = "changed"
	clone.TimeClose = nil

	assert.Equal(t, 42, *original.Number)
	assert.Equal(t, "Anna", original.Patient.FirstName)
	assert.Equal(t, "NA", original.Patient.CustomFields[0].Value)
	assert.Equal(t, arrival, *original.Timings.Arrival)
	assert.Equal(t, "IV", original.Treatments[0].Name)
	assert.Equal(t, PathStatus, original.PendingFields[0])
	assert.NotNil(t, original.TimeClose)
}

func TestCase_CloneNil(t *testing.T) {
	var c *Case
	assert.Nil(t, c.Clone())
}

func TestCase_AddPendingFields(t *testing.T) {
	c := &Case{}
	c.AddPendingFields(PathStatus, PathNotes)
	c.AddPendingFields(PathStatus, PathPatientFirstName)

	assert.Equal(t, []string{PathStatus, PathNotes, PathPatientFirstName}, c.PendingFields)
	assert.True(t, c.HasPendingField(PathNotes))
	assert.False(t, c.HasPendingField(PathNumber))
}

func TestSyncStatus_IsPending(t *testing.T) {
	assert.False(t, SyncStatusSynced.IsPending())
	assert.True(t, SyncStatusEditedPending.IsPending())
	assert.True(t, SyncStatusCreatedPending.IsPending())
}

func TestCaseTypeFor(t *testing.T) {
	assert.Equal(t, CaseTypeFieldHospital, CaseTypeFor(ClientTypeFieldHospital))
	assert.Equal(t, CaseTypePrehospital, CaseTypeFor(ClientTypeField))
	assert.Equal(t, CaseTypePrehospital, CaseTypeFor(""))
}

func TestCaseChanges_Paths(t *testing.T) {
	status := CaseStatusClosed
	arrival := time.Now()

	tests := []struct {
		name    string
		changes CaseChanges
		want    []string
		root    bool
	}{
		{
			name:    "empty",
			changes: CaseChanges{},
			want:    nil,
			root:    false,
		},
		{
			name:    "root status",
			changes: CaseChanges{Status: &status},
			want:    []string{PathStatus},
			root:    true,
		},
		{
			name: "nested only",
			changes: CaseChanges{
				Patient:  &PatientChanges{FirstName: strPtr("Anna"), KinPhone: strPtr("+1")},
				Hospital: &HospitalChanges{Bed: strPtr("12")},
			},
			want: []string{PathHospitalBed, PathPatientFirstName, PathPatientKinPhone},
			root: false,
		},
		{
			name:    "timings are root",
			changes: CaseChanges{Timings: TimingsChanges{TimingArrival: &arrival}},
			want:    []string{TimingPath(TimingArrival)},
			root:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.changes.Paths())
			assert.Equal(t, tt.root, tt.changes.RootChanged())
			assert.Equal(t, len(tt.want) == 0, tt.changes.IsEmpty())
		})
	}
}

func TestCaseChanges_ChangedTimingKeys(t *testing.T) {
	now := time.Now()
	ch := CaseChanges{Timings: TimingsChanges{
		TimingHandover: &now,
		TimingInjury:   nil,
		TimingArrival:  &now,
	}}

	assert.Equal(t, []TimingKey{TimingInjury, TimingArrival, TimingHandover}, ch.ChangedTimingKeys())
}

func TestTimings_GetSet(t *testing.T) {
	now := time.Now()
	tm := &Timings{}

	for _, key := range TimingKeys {
		tm.Set(key, &now)
		require.NotNil(t, tm.Get(key), key)
		assert.Equal(t, now, *tm.Get(key))
	}

	tm.Set(TimingCall, nil)
	assert.Nil(t, tm.Get(TimingCall))

	var nilTimings *Timings
	assert.Nil(t, nilTimings.Get(TimingCall))
	assert.Equal(t, -1, TimingKey("unknown").Index())
	assert.Equal(t, 2, TimingArrival.Index())
}

func TestPatient_FieldSet(t *testing.T) {
	dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &Patient{FirstName: "Anna", DateOfBirth: &dob}

	assert.True(t, p.FieldSet(PatientFieldFirstName))
	assert.True(t, p.FieldSet(PatientFieldDateOfBirth))
	assert.False(t, p.FieldSet(PatientFieldKinName))
	assert.False(t, p.FieldSet("unknown"))

	var nilPatient *Patient
	assert.False(t, nilPatient.FieldSet(PatientFieldFirstName))
}
