package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/rsinnovationhub/hub/internal/catalog"
	"github.com/rsinnovationhub/hub/internal/config"
	"github.com/rsinnovationhub/hub/internal/dialog"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/rsinnovationhub/hub/internal/session"
	"github.com/rsinnovationhub/hub/internal/workflow"
	"github.com/samber/lo"
)

const (
	noticeRegistrationClosed = "Registration for this event is closed."
	noticeInFlight           = "Your submission is already being processed."
)

// sectionAnchors maps each form kind to the page section its dialog opens from.
var sectionAnchors = map[model.FormKind]string{
	model.FormApplication:       "programs",
	model.FormEventRegistration: "events",
	model.FormContact:           "contact",
}

// OpenApplication handles POST /programs/{id}/apply.
func (h *Handler) OpenApplication(w http.ResponseWriter, r *http.Request) {
	h.open(w, r, model.FormApplication, r.PathValue("id"))
}

// OpenRegistration handles POST /events/{id}/register.
func (h *Handler) OpenRegistration(w http.ResponseWriter, r *http.Request) {
	h.open(w, r, model.FormEventRegistration, r.PathValue("id"))
}

// OpenContact handles POST /contact.
func (h *Handler) OpenContact(w http.ResponseWriter, r *http.Request) {
	h.open(w, r, model.FormContact, "")
}

func (h *Handler) open(w http.ResponseWriter, r *http.Request, kind model.FormKind, entityID string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	sess := h.session(w, r)
	ctrl, err := sess.Dialog(kind)
	if err != nil {
		slog.Error("missing dialog controller", "form", kind.String(), "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := ctrl.Open(entityID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrRegistrationClosed):
			sess.Inbox().Notify(workflow.Notification{Kind: kind, Level: workflow.LevelError, Message: noticeRegistrationClosed})
		case errors.Is(err, catalog.ErrNotFound):
			http.Error(w, "Not found", http.StatusNotFound)
			return
		default:
			slog.Error("failed to open dialog", "form", kind.String(), "entity_id", entityID, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	redirectHome(w, r, kind)
}

// SubmitDialog handles POST /dialogs/{kind}/submit. Posted fields are applied
// to the open form before it is submitted.
func (h *Handler) SubmitDialog(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseFormKind(r.PathValue("kind"))
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	sess, ok := h.currentSession(r)
	if !ok {
		redirectHome(w, r, kind)
		return
	}
	ctrl, err := sess.Dialog(kind)
	if err != nil {
		slog.Error("missing dialog controller", "form", kind.String(), "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	for _, name := range model.FormFields(kind) {
		values, posted := r.PostForm[name]
		if !posted || len(values) == 0 {
			continue
		}
		if err := ctrl.Update(name, truncateField(values[0])); err != nil {
			break
		}
	}

	_, err = ctrl.Submit(r.Context())

	var verr *model.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		sess.Inbox().Notify(workflow.Notification{Kind: kind, Level: workflow.LevelError, Message: validationNotice(verr)})
	case errors.Is(err, workflow.ErrSubmissionInFlight):
		sess.Inbox().Notify(workflow.Notification{Kind: kind, Level: workflow.LevelError, Message: noticeInFlight})
	case errors.Is(err, dialog.ErrDialogClosed), errors.Is(err, workflow.ErrDiscarded):
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		slog.Debug("client left before submission resolved", "form", kind.String(), "session_id", sess.ID)
		return
	default:
		slog.Error("failed to submit form", "form", kind.String(), "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	redirectHome(w, r, kind)
}

// CloseDialog handles POST /dialogs/{kind}/close.
func (h *Handler) CloseDialog(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseFormKind(r.PathValue("kind"))
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if sess, ok := h.currentSession(r); ok {
		if ctrl, err := sess.Dialog(kind); err == nil {
			ctrl.Close()
		}
	}

	redirectHome(w, r, kind)
}

// session returns the visitor's session, starting one and setting the
// cookie when the request carries no live session.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(config.SessionCookieName); err == nil {
		id = c.Value
	}

	sess, created := h.sessions.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     config.SessionCookieName,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

// currentSession returns the visitor's live session without starting one.
func (h *Handler) currentSession(r *http.Request) (*session.Session, bool) {
	c, err := r.Cookie(config.SessionCookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	return h.sessions.Get(c.Value)
}

// redirectHome sends the visitor back to the page section of kind, keeping
// the program filter.
func redirectHome(w http.ResponseWriter, r *http.Request, kind model.FormKind) {
	target := "/"
	if category := parseCategory(r.PostFormValue("category")); category != catalog.CategoryAll {
		target += "?" + url.Values{"category": {category}}.Encode()
	}
	target += "#" + sectionAnchors[kind]
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func validationNotice(err *model.ValidationError) string {
	label := func(name string, _ int) string {
		return model.SpecOf(name).Label
	}

	var parts []string
	if len(err.Missing) > 0 {
		parts = append(parts, "Please fill in: "+strings.Join(lo.Map(err.Missing, label), ", ")+".")
	}
	if len(err.Invalid) > 0 {
		parts = append(parts, "Please choose a valid "+strings.Join(lo.Map(err.Invalid, label), ", ")+".")
	}
	return strings.Join(parts, " ")
}

// truncateField caps a posted value at config.MaxFieldLength bytes without
// splitting a UTF-8 sequence.
func truncateField(s string) string {
	if len(s) <= config.MaxFieldLength {
		return s
	}
	cut := config.MaxFieldLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
