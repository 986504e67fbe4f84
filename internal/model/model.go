package model

import "github.com/shopspring/decimal"

// ProgramCategory groups programs for the category filter.
type ProgramCategory string

const (
	CategoryIncubation ProgramCategory = "incubation"
	CategoryCourses    ProgramCategory = "courses"
	CategoryInternship ProgramCategory = "internship"
	CategoryEmployment ProgramCategory = "employment"
)

// ProgramCategories lists the filterable categories in display order.
var ProgramCategories = []ProgramCategory{
	CategoryIncubation,
	CategoryCourses,
	CategoryInternship,
	CategoryEmployment,
}

// EventStatus is the lifecycle stage of an event.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
)

// HeroStat is one headline number on the hero banner.
type HeroStat struct {
	Number string `toml:"number" json:"number"`
	Label  string `toml:"label" json:"label"`
}

// Hero is the top-of-page banner content.
type Hero struct {
	Title       string     `toml:"title" json:"title"`
	Subtitle    string     `toml:"subtitle" json:"subtitle"`
	Description string     `toml:"description" json:"description"`
	Stats       []HeroStat `toml:"stats" json:"stats"`
}

// Program is an offering visitors can apply to.
type Program struct {
	ID          string          `toml:"id" json:"id"`
	Title       string          `toml:"title" json:"title"`
	Description string          `toml:"description" json:"description"`
	Details     string          `toml:"details" json:"details,omitempty"` // markdown
	Features    []string        `toml:"features" json:"features"`
	Duration    string          `toml:"duration" json:"duration"`
	Category    ProgramCategory `toml:"category" json:"category"`
}

// Ref returns the weak reference used to bind an application form.
func (p Program) Ref() EntityRef {
	return EntityRef{ID: p.ID, Title: p.Title, Category: string(p.Category)}
}

// Event is a hackathon, demo day or workshop visitors can register for.
type Event struct {
	ID           string          `toml:"id" json:"id"`
	Title        string          `toml:"title" json:"title"`
	Date         string          `toml:"date" json:"date"`
	Type         string          `toml:"type" json:"type"`
	Description  string          `toml:"description" json:"description"`
	Participants string          `toml:"participants" json:"participants"`
	Prizes       string          `toml:"prizes" json:"prizes"`
	PrizePoolINR decimal.Decimal `toml:"prize_pool_inr" json:"prize_pool_inr"` // zero when prizes are not monetary
	Status       EventStatus     `toml:"status" json:"status"`
}

// Ref returns the weak reference used to bind a registration form.
func (e Event) Ref() EntityRef {
	return EntityRef{ID: e.ID, Title: e.Title}
}

// AcceptsRegistrations reports whether visitors may still register.
func (e Event) AcceptsRegistrations() bool {
	return e.Status == EventUpcoming
}

// SuccessStory is an alumni story shown on the page.
type SuccessStory struct {
	ID          string `toml:"id" json:"id"`
	Name        string `toml:"name" json:"name"`
	Company     string `toml:"company" json:"company"`
	Story       string `toml:"story" json:"story"`
	Achievement string `toml:"achievement" json:"achievement"`
	Image       string `toml:"image" json:"image"`
}

// Testimonial is a quote from a partner or alumnus.
type Testimonial struct {
	ID       string `toml:"id" json:"id"`
	Name     string `toml:"name" json:"name"`
	Position string `toml:"position" json:"position"`
	Content  string `toml:"content" json:"content"`
	Rating   int    `toml:"rating" json:"rating"` // 1-5
}
