package model

// PageData holds data for the home page template.
type PageData struct {
	Hero           Hero
	Categories     []CategoryTab
	Category       string
	Programs       []Program
	Events         []Event
	FeaturedEvent  *Event
	SuccessStories []SuccessStory
	Testimonials   []Testimonial
	Notices        []Notice
	Dialogs        []DialogView
}

// CategoryTab is one entry of the program category filter.
type CategoryTab struct {
	Value  string
	Label  string
	Active bool
}

// Notice is a banner rendered at the top of the page.
type Notice struct {
	Level   string
	Message string
}

// DialogView is an open form dialog ready for rendering.
type DialogView struct {
	Kind        FormKind
	Title       string
	Description string
	Entity      EntityRef
	Fields      []FieldView
	Submitting  bool
	SubmitLabel string
	Category    string // program filter to return to
}

// FieldView is one rendered form field with its current value.
type FieldView struct {
	Name     string
	Value    string
	Required bool
	Options  []Option
	FieldSpec
}
