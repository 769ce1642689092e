package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iudanet/casesync/internal/models"
	"github.com/iudanet/casesync/internal/validation"
)

// setOptions значения флагов команды set
type setOptions struct {
	status      string
	notes       string
	caseDate    string
	firstName   string
	lastName    string
	dateOfBirth string
	sex         string
	kinName     string
	kinPhone    string
	hospital    string
	department  string
	bed         string
	mode        string
	destination string
	priority    string
	code        string
	payer       string
	policy      string
	timings     []string
	fields      []string
	number      int
}

func (a *app) newSetCommand() *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Modify case fields",
		Long: `Modify case fields. Only flags given on the command line are changed.

Timings are set with --timing key=time (injury, call, arrival, departure,
handover); an empty time clears the timing. Patient custom fields are set
with --field name=value.`,
		Args: cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, c *command, args []string) error {
			return c.runSet(ctx, args[0], opts)
		}),
	}

	f := cmd.Flags()
	f.StringVar(&opts.status, "status", "", "Case status (OPEN, CLOSED, ARCHIVED)")
	f.IntVar(&opts.number, "number", 0, "Case number")
	f.StringVar(&opts.notes, "notes", "", "Free text notes")
	f.StringVar(&opts.caseDate, "case-date", "", "Case date (2006-01-02)")
	f.StringVar(&opts.firstName, "first-name", "", "Patient first name")
	f.StringVar(&opts.lastName, "last-name", "", "Patient last name")
	f.StringVar(&opts.dateOfBirth, "dob", "", "Patient date of birth (2006-01-02)")
	f.StringVar(&opts.sex, "sex", "", "Patient sex")
	f.StringVar(&opts.kinName, "kin-name", "", "Next of kin name")
	f.StringVar(&opts.kinPhone, "kin-phone", "", "Next of kin phone")
	f.StringVar(&opts.hospital, "hospital", "", "Hospital name")
	f.StringVar(&opts.department, "department", "", "Hospital department")
	f.StringVar(&opts.bed, "bed", "", "Hospital bed")
	f.StringVar(&opts.mode, "transport-mode", "", "Transport mode")
	f.StringVar(&opts.destination, "destination", "", "Transport destination")
	f.StringVar(&opts.priority, "priority", "", "Transport priority")
	f.StringVar(&opts.code, "billing-code", "", "Billing code")
	f.StringVar(&opts.payer, "payer", "", "Billing payer")
	f.StringVar(&opts.policy, "policy", "", "Billing policy number")
	f.StringArrayVar(&opts.timings, "timing", nil, "Timing key=time, repeatable")
	f.StringArrayVar(&opts.fields, "field", nil, "Patient custom field name=value, repeatable")

	return cmd
}

func (c *command) runSet(ctx context.Context, id string, opts *setOptions) error {
	if err := validation.ValidateCaseID(id); err != nil {
		return err
	}

	changes, err := opts.changes(c.cmd.Flags())
	if err != nil {
		return err
	}
	fields, err := opts.customFields()
	if err != nil {
		return err
	}
	if changes.IsEmpty() && len(fields) == 0 {
		return errors.New("nothing to change: pass at least one field flag")
	}

	if !changes.IsEmpty() {
		if err := c.Engine.ModifyCase(id, changes); err != nil {
			return err
		}
	}
	for _, field := range fields {
		if err := c.Engine.ModifyPatientCustomField(id, field); err != nil {
			return err
		}
	}

	if cs := c.Engine.State().Cases[id]; cs != nil {
		c.io.Printf("✓ Case %s updated (version %d)\n", id, cs.Version)
	}
	return c.flush(ctx)
}

// changes собирает CaseChanges из явно заданных флагов
func (o *setOptions) changes(flags *pflag.FlagSet) (models.CaseChanges, error) {
	var ch models.CaseChanges
	set := flags.Changed

	if set("status") {
		status := models.CaseStatus(o.status)
		switch status {
		case models.CaseStatusOpen, models.CaseStatusClosed, models.CaseStatusArchived:
		default:
			return ch, fmt.Errorf("invalid status %q", o.status)
		}
		ch.Status = &status
	}
	if set("number") {
		ch.Number = &o.number
	}
	if set("notes") {
		ch.Notes = &o.notes
	}
	if set("case-date") {
		d, err := parseDate(o.caseDate)
		if err != nil {
			return ch, err
		}
		ch.CaseDate = &d
	}

	var patient models.PatientChanges
	patientSet := false
	str := func(name string, src *string, dst **string, group *bool) {
		if set(name) {
			*dst = src
			*group = true
		}
	}
	str("first-name", &o.firstName, &patient.FirstName, &patientSet)
	str("last-name", &o.lastName, &patient.LastName, &patientSet)
	str("sex", &o.sex, &patient.Sex, &patientSet)
	str("kin-name", &o.kinName, &patient.KinName, &patientSet)
	str("kin-phone", &o.kinPhone, &patient.KinPhone, &patientSet)
	if set("dob") {
		d, err := parseDate(o.dateOfBirth)
		if err != nil {
			return ch, err
		}
		patient.DateOfBirth = &d
		patientSet = true
	}
	if patientSet {
		ch.Patient = &patient
	}

	var hospital models.HospitalChanges
	hospitalSet := false
	str("hospital", &o.hospital, &hospital.Name, &hospitalSet)
	str("department", &o.department, &hospital.Department, &hospitalSet)
	str("bed", &o.bed, &hospital.Bed, &hospitalSet)
	if hospitalSet {
		ch.Hospital = &hospital
	}

	var transport models.TransportChanges
	transportSet := false
	str("transport-mode", &o.mode, &transport.Mode, &transportSet)
	str("destination", &o.destination, &transport.Destination, &transportSet)
	str("priority", &o.priority, &transport.Priority, &transportSet)
	if transportSet {
		ch.Transport = &transport
	}

	var billing models.BillingChanges
	billingSet := false
	str("billing-code", &o.code, &billing.Code, &billingSet)
	str("payer", &o.payer, &billing.Payer, &billingSet)
	str("policy", &o.policy, &billing.PolicyNumber, &billingSet)
	if billingSet {
		ch.Billing = &billing
	}

	timings, err := o.timingChanges()
	if err != nil {
		return ch, err
	}
	ch.Timings = timings

	return ch, nil
}

func (o *setOptions) timingChanges() (models.TimingsChanges, error) {
	if len(o.timings) == 0 {
		return nil, nil
	}
	changes := make(models.TimingsChanges, len(o.timings))
	for _, raw := range o.timings {
		name, value, err := splitPair(raw)
		if err != nil {
			return nil, err
		}
		key := models.TimingKey(name)
		if key.Index() < 0 {
			return nil, fmt.Errorf("unknown timing %q", name)
		}
		if value == "" {
			changes[key] = nil
			continue
		}
		t, err := parseTime(value)
		if err != nil {
			return nil, err
		}
		changes[key] = &t
	}
	return changes, nil
}

func (o *setOptions) customFields() ([]models.CustomField, error) {
	fields := make([]models.CustomField, 0, len(o.fields))
	for _, raw := range o.fields {
		name, value, err := splitPair(raw)
		if err != nil {
			return nil, err
		}
		fields = append(fields, models.CustomField{FieldName: name, Value: value})
	}
	return fields, nil
}
