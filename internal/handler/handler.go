package handler

import (
	"errors"
	"net/http"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	content  ContentProvider
	sessions SessionStore
	tmpl     TemplateRenderer
}

// New creates a new Handler with the given dependencies.
func New(content ContentProvider, sessions SessionStore, tmpl TemplateRenderer) (*Handler, error) {
	if content == nil {
		return nil, errors.New("content provider is required")
	}
	if sessions == nil {
		return nil, errors.New("session store is required")
	}
	if tmpl == nil {
		return nil, errors.New("templates are required")
	}

	return &Handler{
		content:  content,
		sessions: sessions,
		tmpl:     tmpl,
	}, nil
}

// RegisterRoutes registers all HTTP routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("POST /programs/{id}/apply", h.OpenApplication)
	mux.HandleFunc("POST /events/{id}/register", h.OpenRegistration)
	mux.HandleFunc("POST /contact", h.OpenContact)
	mux.HandleFunc("POST /dialogs/{kind}/submit", h.SubmitDialog)
	mux.HandleFunc("POST /dialogs/{kind}/close", h.CloseDialog)
}
