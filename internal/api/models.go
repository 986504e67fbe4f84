package api

import "github.com/rsinnovationhub/hub/internal/model"

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// ValidationErrorResponse lists the fields that blocked a submission.
type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Code    int      `json:"code"`
	Missing []string `json:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}

// ProgramListResponse is a list of programs.
type ProgramListResponse struct {
	Data  []model.Program `json:"data"`
	Total int             `json:"total"`
}

// EventListResponse is a list of events.
type EventListResponse struct {
	Data  []model.Event `json:"data"`
	Total int           `json:"total"`
}

// TestimonialListResponse is a list of testimonials.
type TestimonialListResponse struct {
	Data  []model.Testimonial `json:"data"`
	Total int                 `json:"total"`
}

// SuccessStoryListResponse is a list of success stories.
type SuccessStoryListResponse struct {
	Data  []model.SuccessStory `json:"data"`
	Total int                  `json:"total"`
}

// ApplicationRequest is a program application.
type ApplicationRequest struct {
	ProgramID       string `json:"program_id" example:"technology-courses"`
	Name            string `json:"name" example:"Asha Verma"`
	Email           string `json:"email" example:"asha@example.com"`
	Phone           string `json:"phone" example:"+91 98765 43210"`
	ExperienceLevel string `json:"experience_level" enums:"beginner,intermediate,experienced"`
	Motivation      string `json:"motivation"`
}

func (r ApplicationRequest) fields() model.FieldSet {
	return model.FieldSet{
		model.FieldName:            r.Name,
		model.FieldEmail:           r.Email,
		model.FieldPhone:           r.Phone,
		model.FieldExperienceLevel: r.ExperienceLevel,
		model.FieldMotivation:      r.Motivation,
	}
}

// RegistrationRequest is an event registration. Organization is optional.
type RegistrationRequest struct {
	Name         string `json:"name" example:"Ravi Kumar"`
	Email        string `json:"email" example:"ravi@example.com"`
	Phone        string `json:"phone" example:"+91 91234 56789"`
	Organization string `json:"organization,omitempty" example:"GJU Hisar"`
}

func (r RegistrationRequest) fields() model.FieldSet {
	return model.FieldSet{
		model.FieldName:         r.Name,
		model.FieldEmail:        r.Email,
		model.FieldPhone:        r.Phone,
		model.FieldOrganization: r.Organization,
	}
}

// ContactRequest is a contact message.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" enums:"general,programs,admissions,partnerships,events,support"`
	Message string `json:"message"`
}

func (r ContactRequest) fields() model.FieldSet {
	return model.FieldSet{
		model.FieldName:    r.Name,
		model.FieldEmail:   r.Email,
		model.FieldPhone:   r.Phone,
		model.FieldSubject: r.Subject,
		model.FieldMessage: r.Message,
	}
}

// SubmissionResponse is the acknowledgement of a submission.
type SubmissionResponse = model.SubmissionResult
