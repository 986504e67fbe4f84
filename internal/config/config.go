package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"

	// DefaultApplicationLatency is the simulated processing time of a program application.
	DefaultApplicationLatency = 1000 * time.Millisecond

	// DefaultRegistrationLatency is the simulated processing time of an event registration.
	DefaultRegistrationLatency = 1200 * time.Millisecond

	// DefaultContactLatency is the simulated processing time of a contact message.
	DefaultContactLatency = 800 * time.Millisecond

	// DefaultSessionTTL is how long an idle visitor session keeps its dialogs.
	DefaultSessionTTL = 30 * time.Minute

	// SessionCookieName is the cookie carrying the visitor session ID.
	SessionCookieName = "hub_session"

	// DefaultRateLimit is the default number of form submissions per minute per IP address.
	DefaultRateLimit = 20

	// MaxFieldLength caps the length of a single posted form value.
	MaxFieldLength = 4000
)
