// Package workflow drives a single form from first keystroke to gateway
// acknowledgement. One Workflow backs one open dialog.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rsinnovationhub/hub/internal/gateway"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/samber/lo"
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while an
	// earlier submission of the same workflow has not resolved yet.
	ErrSubmissionInFlight = errors.New("submission already in progress")

	// ErrDiscarded is returned by operations on a workflow whose dialog has closed.
	ErrDiscarded = errors.New("workflow has been discarded")
)

// Outcome describes how a dispatched submission resolved.
type Outcome struct {
	RequestID string
	Result    model.SubmissionResult
	Err       error // call-level gateway failure
	Stale     bool  // resolved after the workflow was discarded; nothing was applied
}

// Succeeded reports whether the submission was accepted and applied.
func (o Outcome) Succeeded() bool {
	return !o.Stale && o.Err == nil && o.Result.Success
}

// Snapshot is a point-in-time copy of a workflow's state.
type Snapshot struct {
	Kind       model.FormKind
	Target     model.EntityRef
	Fields     model.FieldSet
	Submitting bool
}

// Workflow holds the field state and submission lifecycle of one form.
// Idle -> Submitting -> Idle, with fields cleared on success and kept on failure.
type Workflow struct {
	kind      model.FormKind
	target    model.EntityRef
	gateway   gateway.Gateway
	notifier  Notifier
	onSuccess func()
	logger    *slog.Logger

	mu         sync.Mutex
	fields     model.FieldSet
	submitting bool
	discarded  bool
}

// Option is a functional option for configuring a Workflow.
type Option func(*Workflow)

// WithNotifier sets the receiver of success and failure banners.
func WithNotifier(n Notifier) Option {
	return func(w *Workflow) {
		w.notifier = n
	}
}

// WithOnSuccess sets the hook run after a successful submission has been applied.
// The dialog controller uses it to close the dialog.
func WithOnSuccess(fn func()) Option {
	return func(w *Workflow) {
		w.onSuccess = fn
	}
}

// WithLogger sets a custom logger for the workflow.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workflow) {
		w.logger = logger
	}
}

// New creates a workflow of the given kind bound to target, starting with
// the kind's empty field set.
func New(kind model.FormKind, target model.EntityRef, gw gateway.Gateway, opts ...Option) (*Workflow, error) {
	if gw == nil {
		return nil, errors.New("submission gateway is required")
	}
	if !lo.Contains(model.FormKinds, kind) {
		return nil, fmt.Errorf("unknown form kind %q", kind)
	}

	w := &Workflow{
		kind:    kind,
		target:  target,
		gateway: gw,
		logger:  slog.Default(),
		fields:  model.EmptyFieldSet(kind),
	}

	for _, opt := range opts {
		opt(w)
	}

	w.logger = w.logger.With("form", kind.String(), "entity_id", target.ID)
	return w, nil
}

// Kind returns the form kind.
func (w *Workflow) Kind() model.FormKind {
	return w.kind
}

// Target returns the bound catalog entity.
func (w *Workflow) Target() model.EntityRef {
	return w.target
}

// Update stores value under field. The last write wins. Update never
// validates or submits.
func (w *Workflow) Update(field, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fields[field] = value
}

// Fields returns a copy of the current field set.
func (w *Workflow) Fields() model.FieldSet {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fields.Clone()
}

// IsSubmitting reports whether a submission is in flight.
func (w *Workflow) IsSubmitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// Snapshot returns a copy of the workflow state.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		Kind:       w.kind,
		Target:     w.target,
		Fields:     w.fields.Clone(),
		Submitting: w.submitting,
	}
}

// Discard detaches the workflow from its dialog. A submission still in
// flight resolves without touching state, notifying, or closing anything.
func (w *Workflow) Discard() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.discarded = true
}

// Submit dispatches the current fields and waits for the outcome.
// If ctx ends first, Submit returns ctx.Err() and the submission keeps
// running; its outcome is still applied when the gateway answers.
func (w *Workflow) Submit(ctx context.Context) (Outcome, error) {
	done, err := w.Dispatch(ctx)
	if err != nil {
		return Outcome{}, err
	}

	select {
	case out := <-done:
		return out, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Dispatch starts a submission and returns a channel that receives its
// outcome. It fails without calling the gateway when the workflow is
// discarded (ErrDiscarded), already submitting (ErrSubmissionInFlight), or
// the fields do not pass model.Validate (*model.ValidationError).
//
// The submitting flag is set before Dispatch returns, so any later call
// observes it until the outcome is applied. The gateway call does not
// inherit cancellation from ctx.
func (w *Workflow) Dispatch(ctx context.Context) (<-chan Outcome, error) {
	w.mu.Lock()
	if w.discarded {
		w.mu.Unlock()
		return nil, ErrDiscarded
	}
	if w.submitting {
		w.mu.Unlock()
		w.logger.Debug("duplicate submission dropped")
		return nil, ErrSubmissionInFlight
	}
	fields := w.fields.Clone()
	if err := model.Validate(w.kind, fields); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	req := w.buildRequest(fields)
	w.submitting = true
	w.mu.Unlock()

	done := make(chan Outcome, 1)
	go func() {
		defer close(done)
		done <- w.run(context.WithoutCancel(ctx), req)
	}()

	return done, nil
}

func (w *Workflow) buildRequest(fields model.FieldSet) model.SubmissionRequest {
	if w.kind == model.FormApplication {
		fields[model.FieldProgram] = w.target.Title
	}
	return model.SubmissionRequest{
		ID:             uuid.NewString(),
		Kind:           w.kind,
		Fields:         fields,
		TargetEntityID: w.target.ID,
	}
}

func (w *Workflow) run(ctx context.Context, req model.SubmissionRequest) Outcome {
	w.logger.Debug("dispatching submission", "request_id", req.ID)
	result, err := w.invoke(ctx, req)
	return w.resolve(req, result, err)
}

// invoke calls the gateway operation for the request kind. A panicking
// gateway is reported as a failed call.
func (w *Workflow) invoke(ctx context.Context, req model.SubmissionRequest) (result model.SubmissionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("gateway panic: %v", r)
		}
	}()

	switch req.Kind {
	case model.FormApplication:
		label := lo.CoalesceOrEmpty(w.target.Category, w.target.Title)
		return w.gateway.SubmitApplication(ctx, req.Fields, label)
	case model.FormEventRegistration:
		return w.gateway.RegisterForEvent(ctx, req.TargetEntityID, req.Fields)
	case model.FormContact:
		return w.gateway.SubmitContactMessage(ctx, req.Fields)
	}
	return model.SubmissionResult{}, fmt.Errorf("unknown form kind %q", req.Kind)
}

// resolve applies the gateway answer. Hooks run outside the lock.
func (w *Workflow) resolve(req model.SubmissionRequest, result model.SubmissionResult, err error) Outcome {
	out := Outcome{RequestID: req.ID, Result: result, Err: err}

	w.mu.Lock()
	w.submitting = false
	if w.discarded {
		w.mu.Unlock()
		w.logger.Debug("submission resolved after dialog closed", "request_id", req.ID)
		out.Stale = true
		return out
	}
	succeeded := err == nil && result.Success
	if succeeded {
		w.fields = model.EmptyFieldSet(w.kind)
	}
	w.mu.Unlock()

	if succeeded {
		w.logger.Info("submission accepted", "request_id", req.ID)
		w.notify(LevelSuccess, result.Message)
		if w.onSuccess != nil {
			w.onSuccess()
		}
		return out
	}

	w.logger.Warn("submission failed", "request_id", req.ID, "message", result.Message, "error", err)
	w.notify(LevelError, FallbackMessage(w.kind))
	return out
}

func (w *Workflow) notify(level Level, message string) {
	if w.notifier == nil {
		return
	}
	w.notifier.Notify(Notification{Kind: w.kind, Level: level, Message: message})
}
