package handler

import (
	"io"

	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/rsinnovationhub/hub/internal/session"
)

// TemplateRenderer renders HTML templates.
type TemplateRenderer interface {
	Render(w io.Writer, name string, data any) error
}

// ContentProvider supplies the site content shown on the home page.
type ContentProvider interface {
	Hero() model.Hero
	Programs(category string) []model.Program
	Events(status model.EventStatus) []model.Event
	FeaturedEvent() (model.Event, bool)
	SuccessStories() []model.SuccessStory
	Testimonials() []model.Testimonial
}

// SessionStore finds or starts visitor sessions.
type SessionStore interface {
	Get(id string) (*session.Session, bool)
	GetOrCreate(id string) (*session.Session, bool)
}
