package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/casesync/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestApplyChanges(t *testing.T) {
	now := baseTime.Add(time.Hour)
	arrival := baseTime.Add(30 * time.Minute)
	original := createTestCase("c1", 2, models.CaseStatusOpen)
	original.Patient = &models.Patient{ID: "p1", LastName: "Keep"}

	changes := models.CaseChanges{
		Status: ptr(models.CaseStatusClosed),
		Notes:  ptr("note"),
		Patient: &models.PatientChanges{
			FirstName:    ptr("Anna"),
			CustomFields: &[]models.CustomField{{FieldName: "legalStatus", Value: "Aboriginal"}},
		},
		Hospital:  &models.HospitalChanges{Bed: ptr("12")},
		Timings:   models.TimingsChanges{models.TimingArrival: &arrival},
		Transport: &models.TransportChanges{Mode: ptr("road")},
		Billing:   &models.BillingChanges{Code: ptr("A1")},
	}

	next := ApplyChanges(original, changes, now)

	assert.Equal(t, models.CaseStatusClosed, next.Status)
	assert.Equal(t, "note", next.Notes)
	require.NotNil(t, next.Patient)
	assert.Equal(t, "Anna", next.Patient.FirstName)
	assert.Equal(t, "Keep", next.Patient.LastName)
	assert.Equal(t, "p1", next.Patient.ID)
	assert.Equal(t, []models.CustomField{{FieldName: "legalStatus", Value: "Aboriginal"}}, next.Patient.CustomFields)
	assert.Equal(t, now, *next.Patient.TimeLastUpdate)
	assert.Equal(t, "12", next.Hospital.Bed)
	assert.Equal(t, now, *next.Hospital.TimeLastUpdate)
	assert.Equal(t, arrival, *next.Timings.Arrival)
	assert.Equal(t, now, *next.Timings.TimeLastUpdate)
	assert.Equal(t, "road", next.Transport.Mode)
	assert.Equal(t, "A1", next.Billing.Code)

	// Версия и статус синхронизации не трогаются
	assert.Equal(t, int64(2), next.Version)
	assert.Equal(t, models.SyncStatusSynced, next.SyncStatus)

	// Оригинал не изменен
	assert.Equal(t, models.CaseStatusOpen, original.Status)
	assert.Empty(t, original.Patient.FirstName)
	assert.Nil(t, original.Hospital)
}

func TestApplyChanges_ClearTiming(t *testing.T) {
	call := baseTime
	original := createTestCase("c1", 1, models.CaseStatusOpen)
	original.Timings = &models.Timings{Call: &call}

	next := ApplyChanges(original, models.CaseChanges{Timings: models.TimingsChanges{models.TimingCall: nil}}, baseTime)

	assert.Nil(t, next.Timings.Call)
	assert.NotNil(t, original.Timings.Call)
}

func TestUpsertCustomField(t *testing.T) {
	fields := []models.CustomField{{FieldName: "legalStatus", Value: "NA"}}

	replaced := UpsertCustomField(fields, models.CustomField{FieldName: "legalStatus", Value: "Aboriginal"})
	assert.Equal(t, []models.CustomField{{FieldName: "legalStatus", Value: "Aboriginal"}}, replaced)
	assert.Equal(t, "NA", fields[0].Value)

	appended := UpsertCustomField(fields, models.CustomField{FieldName: "religion", Value: "none"})
	assert.Len(t, appended, 2)
	assert.Len(t, fields, 1)
}
