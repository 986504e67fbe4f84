// Package dialog owns the open/closed state of a form dialog and the
// workflow bound to it.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rsinnovationhub/hub/internal/gateway"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/rsinnovationhub/hub/internal/workflow"
)

// ErrDialogClosed is returned when editing or submitting a dialog that is not open.
var ErrDialogClosed = errors.New("dialog is not open")

// Resolver finds the catalog entity a form of the given kind binds to.
type Resolver interface {
	Resolve(kind model.FormKind, id string) (model.EntityRef, error)
}

// State is a point-in-time view of a dialog for rendering.
type State struct {
	Kind       model.FormKind
	Open       bool
	Entity     model.EntityRef
	Fields     model.FieldSet
	Submitting bool
}

// Controller manages the single dialog of one form kind. Opening a new
// selection replaces the bound entity and starts a fresh workflow.
type Controller struct {
	kind     model.FormKind
	resolver Resolver
	gateway  gateway.Gateway
	notifier workflow.Notifier
	logger   *slog.Logger

	mu   sync.Mutex
	open bool
	wf   *workflow.Workflow
}

// Option is a functional option for configuring a Controller.
type Option func(*Controller)

// WithNotifier sets the receiver of submission banners.
func WithNotifier(n workflow.Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithLogger sets a custom logger for the controller and its workflows.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New creates a closed dialog controller for kind.
func New(kind model.FormKind, resolver Resolver, gw gateway.Gateway, opts ...Option) (*Controller, error) {
	if resolver == nil {
		return nil, errors.New("entity resolver is required")
	}
	if gw == nil {
		return nil, errors.New("submission gateway is required")
	}

	c := &Controller{
		kind:     kind,
		resolver: resolver,
		gateway:  gw,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Kind returns the form kind this controller manages.
func (c *Controller) Kind() model.FormKind {
	return c.kind
}

// Open binds the entity with the given ID to a new workflow and shows the
// dialog. Any previous workflow is discarded. On a lookup error the dialog
// is left as it was.
func (c *Controller) Open(entityID string) error {
	ref, err := c.resolver.Resolve(c.kind, entityID)
	if err != nil {
		return fmt.Errorf("open %s dialog: %w", c.kind, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var wf *workflow.Workflow
	wf, err = workflow.New(c.kind, ref, c.gateway,
		workflow.WithNotifier(c.notifier),
		workflow.WithLogger(c.logger),
		workflow.WithOnSuccess(func() { c.closeIfCurrent(wf) }),
	)
	if err != nil {
		return fmt.Errorf("open %s dialog: %w", c.kind, err)
	}

	if c.wf != nil {
		c.wf.Discard()
	}
	c.wf = wf
	c.open = true

	c.logger.Debug("dialog opened", "form", c.kind.String(), "entity_id", ref.ID)
	return nil
}

// Close hides the dialog and discards its workflow.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

// IsOpen reports whether the dialog is shown.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Update writes one field of the open dialog's form.
func (c *Controller) Update(field, value string) error {
	wf := c.current()
	if wf == nil {
		return ErrDialogClosed
	}
	wf.Update(field, value)
	return nil
}

// Submit submits the open dialog's form and waits for the outcome.
// On success the dialog closes.
func (c *Controller) Submit(ctx context.Context) (workflow.Outcome, error) {
	wf := c.current()
	if wf == nil {
		return workflow.Outcome{}, ErrDialogClosed
	}
	return wf.Submit(ctx)
}

// Dispatch starts a submission of the open dialog's form without waiting.
func (c *Controller) Dispatch(ctx context.Context) (<-chan workflow.Outcome, error) {
	wf := c.current()
	if wf == nil {
		return nil, ErrDialogClosed
	}
	return wf.Dispatch(ctx)
}

// State returns the dialog state. A closed dialog reports the empty field shape.
func (c *Controller) State() State {
	wf := c.current()
	if wf == nil {
		return State{Kind: c.kind, Fields: model.EmptyFieldSet(c.kind)}
	}

	snap := wf.Snapshot()
	return State{
		Kind:       c.kind,
		Open:       true,
		Entity:     snap.Target,
		Fields:     snap.Fields,
		Submitting: snap.Submitting,
	}
}

func (c *Controller) current() *workflow.Workflow {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return nil
	}
	return c.wf
}

// closeIfCurrent closes the dialog only while wf is still the bound workflow.
func (c *Controller) closeIfCurrent(wf *workflow.Workflow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.wf != wf {
		return
	}
	c.closeLocked()
}

func (c *Controller) closeLocked() {
	if c.wf != nil {
		c.wf.Discard()
		c.wf = nil
	}
	c.open = false
}
