package api

import "github.com/rsinnovationhub/hub/internal/model"

// contentQuerier defines the catalog access needed by the API.
type contentQuerier interface {
	Hero() model.Hero
	Programs(category string) []model.Program
	Program(id string) (model.Program, error)
	Events(status model.EventStatus) []model.Event
	Event(id string) (model.Event, error)
	SuccessStories() []model.SuccessStory
	Testimonials() []model.Testimonial
	Resolve(kind model.FormKind, id string) (model.EntityRef, error)
}
