package merge

import (
	"slices"
	"time"

	"github.com/iudanet/casesync/internal/models"
)

// ApplyChanges применяет изменения к копии кейса.
// Затронутые вложенные сущности получают TimeLastUpdate = now.
// Версия, статус синхронизации и PendingFields здесь не меняются.
func ApplyChanges(c *models.Case, ch models.CaseChanges, now time.Time) *models.Case {
	next := c.Clone()

	if ch.Status != nil {
		next.Status = *ch.Status
	}
	if ch.Number != nil {
		next.Number = clonePtr(ch.Number)
	}
	if ch.CaseDate != nil {
		next.CaseDate = *ch.CaseDate
	}
	if ch.Notes != nil {
		next.Notes = *ch.Notes
	}
	if ch.Treatments != nil {
		next.Treatments = slices.Clone(*ch.Treatments)
	}

	if p := ch.Patient; p != nil {
		if next.Patient == nil {
			next.Patient = &models.Patient{}
		}
		applyPatient(next.Patient, p)
		next.Patient.TimeLastUpdate = &now
	}
	if h := ch.Hospital; h != nil {
		if next.Hospital == nil {
			next.Hospital = &models.Hospital{}
		}
		setString(&next.Hospital.Name, h.Name)
		setString(&next.Hospital.Department, h.Department)
		setString(&next.Hospital.Bed, h.Bed)
		next.Hospital.TimeLastUpdate = &now
	}
	if len(ch.Timings) > 0 {
		if next.Timings == nil {
			next.Timings = &models.Timings{}
		}
		for key, value := range ch.Timings {
			next.Timings.Set(key, value)
		}
		next.Timings.TimeLastUpdate = &now
	}
	if t := ch.Transport; t != nil {
		if next.Transport == nil {
			next.Transport = &models.Transport{}
		}
		setString(&next.Transport.Mode, t.Mode)
		setString(&next.Transport.Destination, t.Destination)
		setString(&next.Transport.Priority, t.Priority)
		next.Transport.TimeLastUpdate = &now
	}
	if b := ch.Billing; b != nil {
		if next.Billing == nil {
			next.Billing = &models.Billing{}
		}
		setString(&next.Billing.Code, b.Code)
		setString(&next.Billing.Payer, b.Payer)
		setString(&next.Billing.PolicyNumber, b.PolicyNumber)
		next.Billing.TimeLastUpdate = &now
	}

	return next
}

func applyPatient(to *models.Patient, p *models.PatientChanges) {
	setString(&to.FirstName, p.FirstName)
	setString(&to.LastName, p.LastName)
	setString(&to.Sex, p.Sex)
	setString(&to.KinName, p.KinName)
	setString(&to.KinPhone, p.KinPhone)
	if p.DateOfBirth != nil {
		to.DateOfBirth = clonePtr(p.DateOfBirth)
	}
	if p.CustomFields != nil {
		to.CustomFields = slices.Clone(*p.CustomFields)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// UpsertCustomField возвращает копию fields, где поле с тем же именем
// заменено на field, либо field добавлено в конец.
func UpsertCustomField(fields []models.CustomField, field models.CustomField) []models.CustomField {
	out := slices.Clone(fields)
	for i := range out {
		if out[i].FieldName == field.FieldName {
			out[i] = field
			return out
		}
	}
	return append(out, field)
}
