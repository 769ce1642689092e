package cli

import (
	"text/template"
	"time"

	"github.com/iudanet/casesync/internal/models"
)

const caseTemplate = `
=== Case Details ===

ID:       {{.Case.ID}}
Type:     {{.Case.Type}}
Status:   {{.Case.Status}}{{if .Deleted}} (deleted){{end}}{{if .Overdue}} (discharge overdue){{end}}
{{- with .Case.Number}}
Number:   {{.}}
{{- end}}
Date:     {{date .Case.CaseDate}}
Version:  {{.Case.Version}} ({{.Case.SyncStatus}})
{{- with .Case.CreatedByName}}
Created:  {{.}}
{{- end}}
{{- with .Case.TimeClose}}
Closed:   {{datetime .}}
{{- end}}
{{- with .Case.SessionLastUpdate}}
Updated by another session: {{.}}
{{- end}}
{{- with .Case.Patient}}

Patient:
  Name:   {{.FirstName}} {{.LastName}}
{{- with .DateOfBirth}}
  Born:   {{date .}}
{{- end}}
{{- with .Sex}}
  Sex:    {{.}}
{{- end}}
{{- if or .KinName .KinPhone}}
  Kin:    {{.KinName}} {{.KinPhone}}
{{- end}}
{{- range .CustomFields}}
  {{.FieldName}}: {{.Value}}
{{- end}}
{{- end}}
{{- with .Case.Hospital}}

Hospital: {{.Name}} {{.Department}} {{.Bed}}
{{- end}}
{{- with .Case.Transport}}

Transport: {{.Mode}} -> {{.Destination}} {{.Priority}}
{{- end}}
{{- with .Case.Billing}}

Billing:  {{.Code}} {{.Payer}} {{.PolicyNumber}}
{{- end}}
{{- if .Timings}}

Timings:
{{- range .Timings}}
  {{printf "%-10s" .Key}} {{datetime .Time}}
{{- end}}
{{- end}}
{{- if .Case.Treatments}}

Treatments:
{{- range .Case.Treatments}}
  {{datetime .Time}} {{.Name}}
{{- end}}
{{- end}}
{{- with .Case.Notes}}

Notes:
---
{{.}}
---
{{- end}}
`

var caseTmpl = template.Must(template.New("case").Funcs(template.FuncMap{
	"date":     func(t time.Time) string { return t.Format(time.DateOnly) },
	"datetime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}).Parse(caseTemplate))

type timingView struct {
	Key  models.TimingKey
	Time time.Time
}

type caseView struct {
	Case    *models.Case
	Timings []timingView
	Deleted bool
	Overdue bool
}

func timingViews(c *models.Case) []timingView {
	var views []timingView
	for _, key := range models.TimingKeys {
		if t := c.Timings.Get(key); t != nil {
			views = append(views, timingView{Key: key, Time: *t})
		}
	}
	return views
}
