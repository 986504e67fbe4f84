package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/rsinnovationhub/hub/internal/catalog"
	"github.com/rsinnovationhub/hub/internal/dialog"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/rsinnovationhub/hub/internal/session"
	"github.com/rsinnovationhub/hub/internal/workflow"
	"github.com/samber/lo"
)

// Home handles the single page with programs, events, stories and any open dialogs.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	category := parseCategory(r.URL.Query().Get("category"))

	data := model.PageData{
		Hero:           h.content.Hero(),
		Categories:     categoryTabs(category),
		Category:       category,
		Programs:       h.content.Programs(category),
		Events:         h.content.Events(""),
		SuccessStories: h.content.SuccessStories(),
		Testimonials:   h.content.Testimonials(),
	}
	if featured, ok := h.content.FeaturedEvent(); ok && featured.AcceptsRegistrations() {
		data.FeaturedEvent = &featured
	}

	if sess, ok := h.currentSession(r); ok {
		data.Notices = lo.Map(sess.Inbox().Drain(), func(n workflow.Notification, _ int) model.Notice {
			return model.Notice{Level: string(n.Level), Message: n.Message}
		})
		data.Dialogs = dialogViews(sess, category)
	}

	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, "home.html", data); err != nil {
		slog.Error("failed to render home template", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "error", err)
	}
}

// parseCategory returns a known program category or CategoryAll.
func parseCategory(s string) string {
	if lo.Contains(model.ProgramCategories, model.ProgramCategory(s)) {
		return s
	}
	return catalog.CategoryAll
}

func categoryTabs(active string) []model.CategoryTab {
	tabs := []model.CategoryTab{{Value: catalog.CategoryAll, Label: "All Programs", Active: active == catalog.CategoryAll}}
	for _, c := range model.ProgramCategories {
		tabs = append(tabs, model.CategoryTab{
			Value:  string(c),
			Label:  categoryLabels[c],
			Active: active == string(c),
		})
	}
	return tabs
}

var categoryLabels = map[model.ProgramCategory]string{
	model.CategoryIncubation: "Incubation",
	model.CategoryCourses:    "Courses",
	model.CategoryInternship: "Internships",
	model.CategoryEmployment: "Employment",
}

// dialogViews returns the open dialogs of sess in form-kind order.
func dialogViews(sess *session.Session, category string) []model.DialogView {
	states := sess.Dialogs()
	var views []model.DialogView
	for _, kind := range model.FormKinds {
		st := states[kind]
		if !st.Open {
			continue
		}
		views = append(views, dialogView(st, category))
	}
	return views
}

func dialogView(st dialog.State, category string) model.DialogView {
	view := model.DialogView{
		Kind:       st.Kind,
		Entity:     st.Entity,
		Submitting: st.Submitting,
		Category:   category,
	}

	switch st.Kind {
	case model.FormApplication:
		view.Title = "Apply for " + st.Entity.Title
		view.Description = "Fill in your details to apply for this program. We'll get back to you within 24 hours."
		view.SubmitLabel = lo.Ternary(st.Submitting, "Submitting...", "Submit Application")
	case model.FormEventRegistration:
		view.Title = "Register for " + st.Entity.Title
		view.Description = "Fill in your details to register for this event. Registration is free!"
		view.SubmitLabel = lo.Ternary(st.Submitting, "Registering...", "Complete Registration")
	case model.FormContact:
		view.Title = "Send us a Message"
		view.Description = "Fill out the form below and we'll get back to you within 24 hours."
		view.SubmitLabel = lo.Ternary(st.Submitting, "Sending Message...", "Send Message")
	}

	required := model.RequiredFields(st.Kind)
	view.Fields = lo.Map(model.FormFields(st.Kind), func(name string, _ int) model.FieldView {
		return model.FieldView{
			Name:      name,
			Value:     st.Fields.Get(name),
			Required:  lo.Contains(required, name),
			Options:   model.FieldOptions(name),
			FieldSpec: model.SpecOf(name),
		}
	})
	return view
}
