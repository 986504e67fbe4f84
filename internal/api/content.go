package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rsinnovationhub/hub/internal/catalog"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/samber/lo"
)

// Hero handles GET /api/v1/hero.
//
//	@Summary		Get hero banner
//	@Description	Returns the banner title, subtitle, description and headline stats
//	@Tags			content
//	@Produce		json
//	@Success		200	{object}	model.Hero
//	@Router			/api/v1/hero [get]
func (h *Handler) Hero(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.content.Hero())
}

// ListPrograms handles GET /api/v1/programs.
//
//	@Summary		List programs
//	@Description	Returns programs, optionally filtered by category
//	@Tags			programs
//	@Produce		json
//	@Param			category	query		string	false	"Program category"	Enums(all, incubation, courses, internship, employment)
//	@Success		200			{object}	ProgramListResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/api/v1/programs [get]
func (h *Handler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && category != catalog.CategoryAll &&
		!lo.Contains(model.ProgramCategories, model.ProgramCategory(category)) {
		h.writeError(w, http.StatusBadRequest, "invalid category")
		return
	}

	programs := nonNil(h.content.Programs(category))
	h.writeJSON(w, http.StatusOK, ProgramListResponse{Data: programs, Total: len(programs)})
}

// GetProgram handles GET /api/v1/programs/{id}.
//
//	@Summary		Get program
//	@Tags			programs
//	@Produce		json
//	@Param			id	path		string	true	"Program ID"
//	@Success		200	{object}	model.Program
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/programs/{id} [get]
func (h *Handler) GetProgram(w http.ResponseWriter, r *http.Request) {
	p, err := h.content.Program(r.PathValue("id"))
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// ListEvents handles GET /api/v1/events.
//
//	@Summary		List events
//	@Description	Returns events, optionally filtered by status
//	@Tags			events
//	@Produce		json
//	@Param			status	query		string	false	"Event status"	Enums(upcoming, ongoing, completed)
//	@Success		200		{object}	EventListResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/v1/events [get]
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	status := model.EventStatus(r.URL.Query().Get("status"))
	switch status {
	case "", model.EventUpcoming, model.EventOngoing, model.EventCompleted:
	default:
		h.writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	events := nonNil(h.content.Events(status))
	h.writeJSON(w, http.StatusOK, EventListResponse{Data: events, Total: len(events)})
}

// GetEvent handles GET /api/v1/events/{id}.
//
//	@Summary		Get event
//	@Tags			events
//	@Produce		json
//	@Param			id	path		string	true	"Event ID"
//	@Success		200	{object}	model.Event
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/events/{id} [get]
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	e, err := h.content.Event(r.PathValue("id"))
	if err != nil {
		h.writeLookupError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, e)
}

// ListTestimonials handles GET /api/v1/testimonials.
//
//	@Summary		List testimonials
//	@Tags			content
//	@Produce		json
//	@Success		200	{object}	TestimonialListResponse
//	@Router			/api/v1/testimonials [get]
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	items := nonNil(h.content.Testimonials())
	h.writeJSON(w, http.StatusOK, TestimonialListResponse{Data: items, Total: len(items)})
}

// ListSuccessStories handles GET /api/v1/success-stories.
//
//	@Summary		List success stories
//	@Tags			content
//	@Produce		json
//	@Success		200	{object}	SuccessStoryListResponse
//	@Router			/api/v1/success-stories [get]
func (h *Handler) ListSuccessStories(w http.ResponseWriter, r *http.Request) {
	items := nonNil(h.content.SuccessStories())
	h.writeJSON(w, http.StatusOK, SuccessStoryListResponse{Data: items, Total: len(items)})
}

func (h *Handler) writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrRegistrationClosed):
		h.writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("api: catalog lookup failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
