package workflow

import "github.com/rsinnovationhub/hub/internal/model"

// Level is the severity of a notification banner.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a banner shown to the visitor after a form event.
type Notification struct {
	Kind    model.FormKind
	Level   Level
	Message string
}

// Notifier receives workflow notifications. Implementations must be safe
// for concurrent use; Notify is called from the submission goroutine.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// fallbackMessages is shown instead of the gateway message when a submission fails.
var fallbackMessages = map[model.FormKind]string{
	model.FormApplication:       "Something went wrong. Please try again.",
	model.FormEventRegistration: "Registration failed. Please try again.",
	model.FormContact:           "Failed to send message. Please try again.",
}

// FallbackMessage returns the fixed failure text for kind.
func FallbackMessage(kind model.FormKind) string {
	if msg, ok := fallbackMessages[kind]; ok {
		return msg
	}
	return "Something went wrong. Please try again."
}
