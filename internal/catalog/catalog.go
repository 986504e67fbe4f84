// Package catalog provides the read-only site content: programs, events,
// success stories, testimonials and hero stats.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/samber/lo"
)

//go:embed content.toml
var defaultContent string

var (
	// ErrNotFound is returned when no entity has the requested ID.
	ErrNotFound = errors.New("catalog entity not found")

	// ErrRegistrationClosed is returned when binding a registration form to
	// an event that no longer accepts registrations.
	ErrRegistrationClosed = errors.New("event is not accepting registrations")
)

// CategoryAll is the filter value that matches every program.
const CategoryAll = "all"

type document struct {
	FeaturedEvent  string               `toml:"featured_event"`
	Hero           model.Hero           `toml:"hero"`
	Programs       []model.Program      `toml:"programs"`
	Events         []model.Event        `toml:"events"`
	SuccessStories []model.SuccessStory `toml:"success_stories"`
	Testimonials   []model.Testimonial  `toml:"testimonials"`
}

// Catalog holds immutable site content. It is safe for concurrent use.
type Catalog struct {
	doc      document
	programs map[string]model.Program
	events   map[string]model.Event
}

// Default returns the catalog built from the embedded content document.
func Default() (*Catalog, error) {
	return Parse(defaultContent)
}

// Load reads a TOML content document from path. An empty path yields the
// embedded default content.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	var doc document
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode content file %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return build(doc)
}

// Parse builds a catalog from a TOML content document.
func Parse(data string) (*Catalog, error) {
	var doc document
	md, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return build(doc)
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := lo.Map(undecoded, func(k toml.Key, _ int) string {
		return k.String()
	})
	return fmt.Errorf("unknown content keys: %s", strings.Join(keys, ", "))
}

func build(doc document) (*Catalog, error) {
	c := &Catalog{
		doc:      doc,
		programs: make(map[string]model.Program, len(doc.Programs)),
		events:   make(map[string]model.Event, len(doc.Events)),
	}

	for _, p := range doc.Programs {
		if p.ID == "" {
			return nil, fmt.Errorf("program %q has no id", p.Title)
		}
		if _, dup := c.programs[p.ID]; dup {
			return nil, fmt.Errorf("duplicate program id %q", p.ID)
		}
		if !lo.Contains(model.ProgramCategories, p.Category) {
			return nil, fmt.Errorf("program %q has unknown category %q", p.ID, p.Category)
		}
		c.programs[p.ID] = p
	}

	for _, e := range doc.Events {
		if e.ID == "" {
			return nil, fmt.Errorf("event %q has no id", e.Title)
		}
		if _, dup := c.events[e.ID]; dup {
			return nil, fmt.Errorf("duplicate event id %q", e.ID)
		}
		switch e.Status {
		case model.EventUpcoming, model.EventOngoing, model.EventCompleted:
		default:
			return nil, fmt.Errorf("event %q has unknown status %q", e.ID, e.Status)
		}
		c.events[e.ID] = e
	}

	if doc.FeaturedEvent != "" {
		if _, ok := c.events[doc.FeaturedEvent]; !ok {
			return nil, fmt.Errorf("featured event %q: %w", doc.FeaturedEvent, ErrNotFound)
		}
	}

	return c, nil
}

// Hero returns the banner content.
func (c *Catalog) Hero() model.Hero {
	hero := c.doc.Hero
	hero.Stats = slices.Clone(hero.Stats)
	return hero
}

// Programs returns programs in the given category. An empty category or
// CategoryAll returns every program.
func (c *Catalog) Programs(category string) []model.Program {
	if category == "" || category == CategoryAll {
		return slices.Clone(c.doc.Programs)
	}
	return lo.Filter(c.doc.Programs, func(p model.Program, _ int) bool {
		return string(p.Category) == category
	})
}

// Program returns the program with the given ID.
func (c *Catalog) Program(id string) (model.Program, error) {
	p, ok := c.programs[id]
	if !ok {
		return model.Program{}, fmt.Errorf("program %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// Events returns events with the given status, or every event when status is empty.
func (c *Catalog) Events(status model.EventStatus) []model.Event {
	if status == "" {
		return slices.Clone(c.doc.Events)
	}
	return lo.Filter(c.doc.Events, func(e model.Event, _ int) bool {
		return e.Status == status
	})
}

// Event returns the event with the given ID.
func (c *Catalog) Event(id string) (model.Event, error) {
	e, ok := c.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("event %q: %w", id, ErrNotFound)
	}
	return e, nil
}

// FeaturedEvent returns the event promoted in the call-to-action banner.
func (c *Catalog) FeaturedEvent() (model.Event, bool) {
	e, ok := c.events[c.doc.FeaturedEvent]
	return e, ok
}

// SuccessStories returns all success stories.
func (c *Catalog) SuccessStories() []model.SuccessStory {
	return slices.Clone(c.doc.SuccessStories)
}

// Testimonials returns all testimonials.
func (c *Catalog) Testimonials() []model.Testimonial {
	return slices.Clone(c.doc.Testimonials)
}

// Resolve looks up the entity a form of the given kind is bound to.
// Applications bind to programs, registrations to events that still accept
// registrations, and contact messages to nothing (id must be empty).
func (c *Catalog) Resolve(kind model.FormKind, id string) (model.EntityRef, error) {
	switch kind {
	case model.FormApplication:
		p, err := c.Program(id)
		if err != nil {
			return model.EntityRef{}, err
		}
		return p.Ref(), nil

	case model.FormEventRegistration:
		e, err := c.Event(id)
		if err != nil {
			return model.EntityRef{}, err
		}
		if !e.AcceptsRegistrations() {
			return model.EntityRef{}, fmt.Errorf("event %q: %w", id, ErrRegistrationClosed)
		}
		return e.Ref(), nil

	case model.FormContact:
		if id != "" {
			return model.EntityRef{}, fmt.Errorf("contact form takes no entity, got %q", id)
		}
		return model.EntityRef{}, nil
	}

	return model.EntityRef{}, fmt.Errorf("unknown form kind %q", kind)
}
