package store

import (
	"slices"
	"strings"
	"time"

	"github.com/iudanet/casesync/internal/models"
)

// Cases возвращает видимые кейсы (область NORMAL), новые первыми.
func Cases(s State) []*models.Case {
	out := make([]*models.Case, 0, len(s.Cases))
	for _, c := range s.Cases {
		if c.Realm == "" || c.Realm == models.RealmNormal {
			out = append(out, c)
		}
	}
	sortCases(out)
	return out
}

// AllCases возвращает все активные кейсы, включая скрытые области.
// Карта копируется, сами кейсы общие и не изменяются.
func AllCases(s State) models.CasesHash {
	return s.Cases.Clone()
}

// CaseByID ищет кейс среди активных, затем среди удаленных.
func CaseByID(s State, id string) *models.Case {
	if c, ok := s.Cases[id]; ok {
		return c
	}
	return s.Deleted[id]
}

// DeletedCases возвращает удаленные кейсы, новые первыми.
func DeletedCases(s State) []*models.Case {
	out := make([]*models.Case, 0, len(s.Deleted))
	for _, c := range s.Deleted {
		out = append(out, c)
	}
	sortCases(out)
	return out
}

func Loading(s State) bool        { return s.Loading }
func DeletedLoading(s State) bool { return s.DeletedLoading }
func Syncing(s State) bool        { return s.Syncing }
func Error(s State) string        { return s.Error }
func DeletedError(s State) string { return s.DeletedError }

// PendingCount количество кейсов и удалений, ожидающих отправки на сервер.
func PendingCount(s State) int {
	n := len(s.PendingDeletes)
	for _, c := range s.Cases {
		if c.SyncStatus.IsPending() {
			n++
		}
	}
	return n
}

// PatientTabChecked сообщает, заполнено ли хотя бы одно поле формы пациента.
// includeKin == nil проверяет все поля, true только поля родственника,
// false все остальные поля.
func PatientTabChecked(c *models.Case, includeKin *bool) bool {
	if c == nil || c.Patient == nil {
		return false
	}
	for _, field := range models.PatientFormFields {
		if includeKin != nil && *includeKin != strings.HasPrefix(field, "kin") {
			continue
		}
		if c.Patient.FieldSet(field) {
			return true
		}
	}
	return false
}

// DischargeOverdue сообщает, что открытый кейс стационара не выписан
// дольше models.DaysForDischarge дней с опорной даты.
func DischargeOverdue(c *models.Case, now time.Time) bool {
	if c == nil || c.Type != models.CaseTypeFieldHospital || c.Status != models.CaseStatusOpen {
		return false
	}
	return !now.Before(c.CaseDate.AddDate(0, 0, models.DaysForDischarge))
}

func sortCases(cases []*models.Case) {
	slices.SortFunc(cases, func(a, b *models.Case) int {
		if c := b.TimeCreate.Compare(a.TimeCreate); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
