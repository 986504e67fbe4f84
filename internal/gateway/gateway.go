// Package gateway defines the boundary the form workflow submits through and
// a simulated implementation that acknowledges every submission after a
// fixed delay.
package gateway

import (
	"context"

	"github.com/rsinnovationhub/hub/internal/model"
)

// Gateway accepts one kind of submission per method and reports the
// outcome. A returned error means the call itself failed; a result with
// Success == false means it was refused.
type Gateway interface {
	SubmitApplication(ctx context.Context, fields model.FieldSet, programLabel string) (model.SubmissionResult, error)
	RegisterForEvent(ctx context.Context, eventID string, fields model.FieldSet) (model.SubmissionResult, error)
	SubmitContactMessage(ctx context.Context, fields model.FieldSet) (model.SubmissionResult, error)
}
