package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rsinnovationhub/hub/internal/config"
	"github.com/rsinnovationhub/hub/internal/dialog"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/rsinnovationhub/hub/internal/workflow"
	"github.com/samber/lo"
)

// SubmitApplication handles POST /api/v1/applications.
//
//	@Summary		Apply to a program
//	@Description	Validates the application and submits it for the program with the given ID
//	@Tags			submissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ApplicationRequest	true	"Application"
//	@Success		200		{object}	SubmissionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Failure		502		{object}	SubmissionResponse
//	@Router			/api/v1/applications [post]
func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req ApplicationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	h.submit(w, r, model.FormApplication, req.ProgramID, req.fields())
}

// RegisterForEvent handles POST /api/v1/events/{id}/registrations.
//
//	@Summary		Register for an event
//	@Description	Registers for an upcoming event; organization is optional
//	@Tags			submissions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Event ID"
//	@Param			request	body		RegistrationRequest	true	"Registration"
//	@Success		200		{object}	SubmissionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Failure		502		{object}	SubmissionResponse
//	@Router			/api/v1/events/{id}/registrations [post]
func (h *Handler) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	h.submit(w, r, model.FormEventRegistration, r.PathValue("id"), req.fields())
}

// SubmitContact handles POST /api/v1/contact.
//
//	@Summary		Send a contact message
//	@Tags			submissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ContactRequest	true	"Contact message"
//	@Success		200		{object}	SubmissionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Failure		502		{object}	SubmissionResponse
//	@Router			/api/v1/contact [post]
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	h.submit(w, r, model.FormContact, "", req.fields())
}

// submit runs one stateless dialog: open on entityID, fill, submit.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, kind model.FormKind, entityID string, fields model.FieldSet) {
	if tooLong := overlongFields(kind, fields); len(tooLong) > 0 {
		h.writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:   "fields exceed maximum length",
			Code:    http.StatusUnprocessableEntity,
			Invalid: tooLong,
		})
		return
	}

	ctrl, err := dialog.New(kind, h.content, h.gateway)
	if err != nil {
		slog.Error("api: failed to create dialog", "form", kind.String(), "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if err := ctrl.Open(entityID); err != nil {
		h.writeLookupError(w, err)
		return
	}
	for _, name := range model.FormFields(kind) {
		if err := ctrl.Update(name, fields.Get(name)); err != nil {
			slog.Error("api: failed to update field", "form", kind.String(), "field", name, "error", err)
			h.writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	out, err := ctrl.Submit(r.Context())
	var verr *model.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:   verr.Error(),
			Code:    http.StatusUnprocessableEntity,
			Missing: verr.Missing,
			Invalid: verr.Invalid,
		})
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		slog.Debug("api: client left before submission resolved", "form", kind.String())
		return
	default:
		slog.Error("api: submission failed", "form", kind.String(), "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if !out.Succeeded() {
		h.writeJSON(w, http.StatusBadGateway, SubmissionResponse{
			Success: false,
			Message: workflow.FallbackMessage(kind),
		})
		return
	}
	h.writeJSON(w, http.StatusOK, out.Result)
}

// overlongFields returns the fields of kind whose value exceeds config.MaxFieldLength.
func overlongFields(kind model.FormKind, fields model.FieldSet) []string {
	return lo.Filter(model.FormFields(kind), func(name string, _ int) bool {
		return len(fields.Get(name)) > config.MaxFieldLength
	})
}
