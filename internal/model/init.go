package model

// Option is a value/label pair for an enumerated form field.
type Option struct {
	Value string
	Label string
}

// ExperienceLevels lists the choices for the application experienceLevel field.
var ExperienceLevels = []Option{
	{Value: "beginner", Label: "Beginner (0-1 years)"},
	{Value: "intermediate", Label: "Intermediate (1-3 years)"},
	{Value: "experienced", Label: "Experienced (3+ years)"},
}

// ContactSubjects lists the choices for the contact subject field.
var ContactSubjects = []Option{
	{Value: "general", Label: "General Inquiry"},
	{Value: "programs", Label: "Program Information"},
	{Value: "admissions", Label: "Admissions"},
	{Value: "partnerships", Label: "Partnerships"},
	{Value: "events", Label: "Event Registration"},
	{Value: "support", Label: "Technical Support"},
}

// fieldOptions maps enumerated fields to their allowed options.
var fieldOptions = map[string][]Option{
	FieldExperienceLevel: ExperienceLevels,
	FieldSubject:         ContactSubjects,
}

// FieldOptions returns the allowed options of an enumerated field, or nil.
func FieldOptions(field string) []Option {
	return fieldOptions[field]
}

// HasOption reports whether value is one of the option values.
func HasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Input widgets used to render form fields.
const (
	InputText     = "text"
	InputEmail    = "email"
	InputTel      = "tel"
	InputSelect   = "select"
	InputTextarea = "textarea"
)

// FieldSpec describes how a form field is presented.
type FieldSpec struct {
	Label       string
	Placeholder string
	Input       string
}

var fieldSpecs = map[string]FieldSpec{
	FieldName:            {Label: "Full Name", Placeholder: "Your full name", Input: InputText},
	FieldEmail:           {Label: "Email Address", Placeholder: "your.email@example.com", Input: InputEmail},
	FieldPhone:           {Label: "Phone Number", Placeholder: "Your phone number", Input: InputTel},
	FieldExperienceLevel: {Label: "Experience Level", Placeholder: "Select your experience level", Input: InputSelect},
	FieldMotivation:      {Label: "Why do you want to join this program?", Placeholder: "Tell us about your goals and motivation...", Input: InputTextarea},
	FieldOrganization:    {Label: "Organization/College", Placeholder: "Your current organization or college", Input: InputText},
	FieldSubject:         {Label: "Subject", Placeholder: "Select a subject", Input: InputSelect},
	FieldMessage:         {Label: "Message", Placeholder: "Tell us more about your inquiry or goals...", Input: InputTextarea},
}

// SpecOf returns the presentation of field. Unknown fields render as plain text inputs.
func SpecOf(field string) FieldSpec {
	if spec, ok := fieldSpecs[field]; ok {
		return spec
	}
	return FieldSpec{Label: field, Input: InputText}
}
