// Package gatewaytest provides a controllable Gateway for tests.
package gatewaytest

import (
	"context"
	"sync"

	"github.com/rsinnovationhub/hub/internal/model"
)

// Call records one gateway invocation.
type Call struct {
	Method       string
	EntityID     string
	ProgramLabel string
	Fields       model.FieldSet
}

// Fake is a Gateway whose answers and timing are set by the test.
// The zero value answers every call with Result{} immediately.
type Fake struct {
	// Result and Err are returned by every call.
	Result model.SubmissionResult
	Err    error
	// Panic, when non-empty, makes every call panic with this value.
	Panic string
	// Release, when non-nil, blocks each call until a value is received.
	Release chan struct{}
	// Started, when non-nil, receives a value as each call begins.
	Started chan struct{}

	mu    sync.Mutex
	calls []Call
}

// Succeeding returns a Fake that acknowledges every call with message.
func Succeeding(message string) *Fake {
	return &Fake{Result: model.SubmissionResult{Success: true, Message: message}}
}

// Blocking returns a Fake that acknowledges with message once released.
// Started is buffered so calls never block on it.
func Blocking(message string) *Fake {
	f := Succeeding(message)
	f.Release = make(chan struct{})
	f.Started = make(chan struct{}, 16)
	return f
}

// Calls returns a copy of the recorded invocations.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallCount returns the number of recorded invocations.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *Fake) SubmitApplication(_ context.Context, fields model.FieldSet, programLabel string) (model.SubmissionResult, error) {
	return f.do(Call{Method: "SubmitApplication", ProgramLabel: programLabel, Fields: fields.Clone()})
}

func (f *Fake) RegisterForEvent(_ context.Context, eventID string, fields model.FieldSet) (model.SubmissionResult, error) {
	return f.do(Call{Method: "RegisterForEvent", EntityID: eventID, Fields: fields.Clone()})
}

func (f *Fake) SubmitContactMessage(_ context.Context, fields model.FieldSet) (model.SubmissionResult, error) {
	return f.do(Call{Method: "SubmitContactMessage", Fields: fields.Clone()})
}

func (f *Fake) do(c Call) (model.SubmissionResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	if f.Started != nil {
		f.Started <- struct{}{}
	}
	if f.Release != nil {
		<-f.Release
	}
	if f.Panic != "" {
		panic(f.Panic)
	}
	return f.Result, f.Err
}
