package model

import (
	"fmt"
	"maps"
	"strings"

	"github.com/samber/lo"
)

// FormKind identifies which of the three site forms a workflow drives.
type FormKind string

const (
	FormApplication       FormKind = "application"
	FormEventRegistration FormKind = "event-registration"
	FormContact           FormKind = "contact"
)

// FormKinds lists every supported form kind in display order.
var FormKinds = []FormKind{FormApplication, FormEventRegistration, FormContact}

// ParseFormKind converts a URL or log token into a FormKind.
func ParseFormKind(s string) (FormKind, error) {
	kind := FormKind(s)
	if !lo.Contains(FormKinds, kind) {
		return "", fmt.Errorf("unknown form kind %q", s)
	}
	return kind, nil
}

func (k FormKind) String() string {
	return string(k)
}

// Field names shared by the form shapes.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldExperienceLevel = "experienceLevel"
	FieldMotivation      = "motivation"
	FieldOrganization    = "organization"
	FieldSubject         = "subject"
	FieldMessage         = "message"

	// FieldProgram is filled from the bound program when an application
	// request is built. Users never edit it.
	FieldProgram = "program"
)

// formShapes holds the user-editable fields of each form, in display order.
var formShapes = map[FormKind][]string{
	FormApplication:       {FieldName, FieldEmail, FieldPhone, FieldExperienceLevel, FieldMotivation},
	FormEventRegistration: {FieldName, FieldEmail, FieldPhone, FieldOrganization},
	FormContact:           {FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage},
}

// optionalFields are allowed to be empty at submission time.
var optionalFields = []string{FieldOrganization}

// FormFields returns the user-editable field names of kind.
func FormFields(kind FormKind) []string {
	return append([]string(nil), formShapes[kind]...)
}

// RequiredFields returns the fields that must be non-empty before kind can be submitted.
func RequiredFields(kind FormKind) []string {
	return lo.Without(formShapes[kind], optionalFields...)
}

// FieldSet maps field names to their current values.
type FieldSet map[string]string

// EmptyFieldSet returns the initial shape of kind: every editable field present and empty.
func EmptyFieldSet(kind FormKind) FieldSet {
	fields := make(FieldSet, len(formShapes[kind]))
	for _, name := range formShapes[kind] {
		fields[name] = ""
	}
	return fields
}

// Clone returns an independent copy of the field set.
func (f FieldSet) Clone() FieldSet {
	if f == nil {
		return FieldSet{}
	}
	return maps.Clone(f)
}

// Get returns the value of name, or "" when the field is unset.
func (f FieldSet) Get(name string) string {
	return f[name]
}

// SubmissionRequest is the immutable value handed to the submission gateway.
type SubmissionRequest struct {
	ID             string
	Kind           FormKind
	Fields         FieldSet
	TargetEntityID string // empty for contact messages
}

// SubmissionResult is the gateway's binary acknowledgement.
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationError reports the fields that block a submission.
type ValidationError struct {
	Kind    FormKind
	Missing []string // required fields left empty
	Invalid []string // enumerated fields holding an unknown value
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+strings.Join(e.Invalid, ", "))
	}
	return fmt.Sprintf("%s form: %s", e.Kind, strings.Join(parts, "; "))
}

// Validate checks the submission precondition for kind: every required field
// is non-empty and enumerated fields hold a known value. Email and phone are
// free text.
func Validate(kind FormKind, fields FieldSet) error {
	shape, ok := formShapes[kind]
	if !ok {
		return fmt.Errorf("unknown form kind %q", kind)
	}

	verr := &ValidationError{Kind: kind}
	for _, name := range shape {
		value := fields[name]
		if value == "" {
			if !lo.Contains(optionalFields, name) {
				verr.Missing = append(verr.Missing, name)
			}
			continue
		}
		if options, enumerated := fieldOptions[name]; enumerated && !HasOption(options, value) {
			verr.Invalid = append(verr.Invalid, name)
		}
	}

	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return verr
	}
	return nil
}

// EntityRef is a weak reference to the catalog entity a form is bound to.
type EntityRef struct {
	ID       string
	Title    string
	Category string // program category; empty for events
}

// IsZero reports whether the reference points at nothing (contact form).
func (r EntityRef) IsZero() bool {
	return r.ID == ""
}
