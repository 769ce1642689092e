package merge

import (
	"slices"
	"strings"
	"time"

	"github.com/iudanet/casesync/internal/models"
)

// copyField переносит значение поля path из src в dst.
// Отсутствующая в src сущность считается пустой.
// Возвращает false для неизвестного пути.
func copyField(dst, src *models.Case, path string) bool {
	switch {
	case path == models.PathStatus:
		dst.Status = src.Status
	case path == models.PathNumber:
		dst.Number = clonePtr(src.Number)
	case path == models.PathCaseDate:
		dst.CaseDate = src.CaseDate
	case path == models.PathNotes:
		dst.Notes = src.Notes
	case path == models.PathTreatments:
		dst.Treatments = slices.Clone(src.Treatments)
	case strings.HasPrefix(path, "patient."):
		return copyPatientField(dst, src, path)
	case strings.HasPrefix(path, "hospital."):
		return copyHospitalField(dst, src, path)
	case strings.HasPrefix(path, "timings."):
		return copyTimingField(dst, src, path)
	case strings.HasPrefix(path, "caseTransport."):
		return copyTransportField(dst, src, path)
	case strings.HasPrefix(path, "caseBilling."):
		return copyBillingField(dst, src, path)
	default:
		return false
	}
	return true
}

func copyPatientField(dst, src *models.Case, path string) bool {
	from := src.Patient
	if from == nil {
		from = &models.Patient{}
	}
	if dst.Patient == nil {
		dst.Patient = &models.Patient{ID: from.ID}
	}
	to := dst.Patient

	switch path {
	case models.PathPatientFirstName:
		to.FirstName = from.FirstName
	case models.PathPatientLastName:
		to.LastName = from.LastName
	case models.PathPatientDateOfBirth:
		to.DateOfBirth = clonePtr(from.DateOfBirth)
	case models.PathPatientSex:
		to.Sex = from.Sex
	case models.PathPatientKinName:
		to.KinName = from.KinName
	case models.PathPatientKinPhone:
		to.KinPhone = from.KinPhone
	case models.PathPatientCustomFields:
		to.CustomFields = slices.Clone(from.CustomFields)
	default:
		return false
	}
	to.TimeLastUpdate = later(to.TimeLastUpdate, from.TimeLastUpdate)
	return true
}

func copyHospitalField(dst, src *models.Case, path string) bool {
	from := src.Hospital
	if from == nil {
		from = &models.Hospital{}
	}
	if dst.Hospital == nil {
		dst.Hospital = &models.Hospital{}
	}
	to := dst.Hospital

	switch path {
	case models.PathHospitalName:
		to.Name = from.Name
	case models.PathHospitalDepartment:
		to.Department = from.Department
	case models.PathHospitalBed:
		to.Bed = from.Bed
	default:
		return false
	}
	to.TimeLastUpdate = later(to.TimeLastUpdate, from.TimeLastUpdate)
	return true
}

func copyTimingField(dst, src *models.Case, path string) bool {
	key := models.TimingKey(strings.TrimPrefix(path, "timings."))
	if key.Index() < 0 {
		return false
	}
	if dst.Timings == nil {
		dst.Timings = &models.Timings{}
	}
	dst.Timings.Set(key, src.Timings.Get(key))
	if src.Timings != nil {
		dst.Timings.TimeLastUpdate = later(dst.Timings.TimeLastUpdate, src.Timings.TimeLastUpdate)
	}
	return true
}

func copyTransportField(dst, src *models.Case, path string) bool {
	from := src.Transport
	if from == nil {
		from = &models.Transport{}
	}
	if dst.Transport == nil {
		dst.Transport = &models.Transport{}
	}
	to := dst.Transport

	switch path {
	case models.PathTransportMode:
		to.Mode = from.Mode
	case models.PathTransportDestination:
		to.Destination = from.Destination
	case models.PathTransportPriority:
		to.Priority = from.Priority
	default:
		return false
	}
	to.TimeLastUpdate = later(to.TimeLastUpdate, from.TimeLastUpdate)
	return true
}

func copyBillingField(dst, src *models.Case, path string) bool {
	from := src.Billing
	if from == nil {
		from = &models.Billing{}
	}
	if dst.Billing == nil {
		dst.Billing = &models.Billing{}
	}
	to := dst.Billing

	switch path {
	case models.PathBillingCode:
		to.Code = from.Code
	case models.PathBillingPayer:
		to.Payer = from.Payer
	case models.PathBillingPolicyNumber:
		to.PolicyNumber = from.PolicyNumber
	default:
		return false
	}
	to.TimeLastUpdate = later(to.TimeLastUpdate, from.TimeLastUpdate)
	return true
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// later возвращает более позднее из двух времен (копию).
func later(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return clonePtr(b)
	case b == nil:
		return clonePtr(a)
	case b.After(*a):
		return clonePtr(b)
	default:
		return clonePtr(a)
	}
}

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
