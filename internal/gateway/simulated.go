package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/rsinnovationhub/hub/internal/config"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/samber/lo"
)

const (
	// ContactAcknowledgement is returned for every accepted contact message.
	ContactAcknowledgement = "Thank you for reaching out! We'll get back to you soon."

	// RegistrationAcknowledgement is returned for every accepted event registration.
	RegistrationAcknowledgement = "Successfully registered for the event!"
)

// ApplicationAcknowledgement returns the confirmation for an application to
// a program labelled programLabel.
func ApplicationAcknowledgement(programLabel string) string {
	return fmt.Sprintf("Your %s application has been submitted successfully!", programLabel)
}

// Simulated is a Gateway with no backend. Each call waits a fixed latency
// and then succeeds.
type Simulated struct {
	applicationDelay  time.Duration
	registrationDelay time.Duration
	contactDelay      time.Duration
	logger            *slog.Logger
}

// SimulatedOption is a functional option for configuring a Simulated gateway.
type SimulatedOption func(*Simulated)

// WithLatency sets the artificial delay of each operation. Zero disables the wait.
func WithLatency(application, registration, contact time.Duration) SimulatedOption {
	return func(s *Simulated) {
		s.applicationDelay = application
		s.registrationDelay = registration
		s.contactDelay = contact
	}
}

// WithLogger sets a custom logger for the gateway.
func WithLogger(logger *slog.Logger) SimulatedOption {
	return func(s *Simulated) {
		s.logger = logger
	}
}

// NewSimulated creates a simulated gateway with the reference latencies.
func NewSimulated(opts ...SimulatedOption) *Simulated {
	s := &Simulated{
		applicationDelay:  config.DefaultApplicationLatency,
		registrationDelay: config.DefaultRegistrationLatency,
		contactDelay:      config.DefaultContactLatency,
		logger:            slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SubmitApplication acknowledges a program application.
func (s *Simulated) SubmitApplication(ctx context.Context, fields model.FieldSet, programLabel string) (model.SubmissionResult, error) {
	s.logger.Info("submitting application",
		"program", fields.Get(model.FieldProgram),
		"label", programLabel,
		"fields", fieldNames(fields),
	)
	if err := wait(ctx, s.applicationDelay); err != nil {
		return model.SubmissionResult{}, fmt.Errorf("submit application: %w", err)
	}
	return model.SubmissionResult{Success: true, Message: ApplicationAcknowledgement(programLabel)}, nil
}

// RegisterForEvent acknowledges an event registration.
func (s *Simulated) RegisterForEvent(ctx context.Context, eventID string, fields model.FieldSet) (model.SubmissionResult, error) {
	s.logger.Info("registering for event", "event_id", eventID, "fields", fieldNames(fields))
	if err := wait(ctx, s.registrationDelay); err != nil {
		return model.SubmissionResult{}, fmt.Errorf("register for event %s: %w", eventID, err)
	}
	return model.SubmissionResult{Success: true, Message: RegistrationAcknowledgement}, nil
}

// SubmitContactMessage acknowledges a contact message. The reply does not
// depend on the subject.
func (s *Simulated) SubmitContactMessage(ctx context.Context, fields model.FieldSet) (model.SubmissionResult, error) {
	s.logger.Info("submitting contact message", "subject", fields.Get(model.FieldSubject), "fields", fieldNames(fields))
	if err := wait(ctx, s.contactDelay); err != nil {
		return model.SubmissionResult{}, fmt.Errorf("submit contact message: %w", err)
	}
	return model.SubmissionResult{Success: true, Message: ContactAcknowledgement}, nil
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fieldNames lists the non-empty fields for logging without their values.
func fieldNames(fields model.FieldSet) []string {
	filled := lo.PickBy(map[string]string(fields), func(_ string, v string) bool {
		return v != ""
	})
	names := lo.Keys(filled)
	slices.Sort(names)
	return names
}
