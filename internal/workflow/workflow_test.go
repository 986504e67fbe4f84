package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rsinnovationhub/hub/internal/gateway"
	"github.com/rsinnovationhub/hub/internal/gateway/gatewaytest"
	"github.com/rsinnovationhub/hub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	coursesRef   = model.EntityRef{ID: "technology-courses", Title: "Technology Courses", Category: "courses"}
	hackathonRef = model.EntityRef{ID: "haryanahack-2024", Title: "HaryanaHack 2024"}
)

// recorder collects notifications.
type recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *recorder) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

func validFields(kind model.FormKind) model.FieldSet {
	switch kind {
	case model.FormApplication:
		return model.FieldSet{
			"name": "Asha", "email": "a@x.com", "phone": "999",
			"experienceLevel": "beginner", "motivation": "learn",
		}
	case model.FormEventRegistration:
		return model.FieldSet{"name": "Asha", "email": "a@x.com", "phone": "999"}
	default:
		return model.FieldSet{
			"name": "Asha", "email": "a@x.com", "phone": "999",
			"subject": "admissions", "message": "When does the next cohort start?",
		}
	}
}

func targetFor(kind model.FormKind) model.EntityRef {
	switch kind {
	case model.FormApplication:
		return coursesRef
	case model.FormEventRegistration:
		return hackathonRef
	}
	return model.EntityRef{}
}

func newFilled(t *testing.T, kind model.FormKind, gw gateway.Gateway, opts ...Option) *Workflow {
	t.Helper()
	w, err := New(kind, targetFor(kind), gw, opts...)
	require.NoError(t, err)
	for k, v := range validFields(kind) {
		w.Update(k, v)
	}
	return w
}

func TestNew(t *testing.T) {
	t.Run("nil gateway returns error", func(t *testing.T) {
		w, err := New(model.FormContact, model.EntityRef{}, nil)
		assert.Nil(t, w)
		assert.ErrorContains(t, err, "gateway")
	})

	t.Run("unknown kind returns error", func(t *testing.T) {
		w, err := New(model.FormKind("survey"), model.EntityRef{}, &gatewaytest.Fake{})
		assert.Nil(t, w)
		assert.Error(t, err)
	})

	t.Run("starts idle with empty shape", func(t *testing.T) {
		w, err := New(model.FormEventRegistration, hackathonRef, &gatewaytest.Fake{})
		require.NoError(t, err)
		snap := w.Snapshot()
		assert.Equal(t, model.EmptyFieldSet(model.FormEventRegistration), snap.Fields)
		assert.False(t, snap.Submitting)
		assert.Equal(t, hackathonRef, snap.Target)
		assert.Equal(t, model.FormEventRegistration, w.Kind())
	})
}

func TestUpdate_LastWriteWins(t *testing.T) {
	w, err := New(model.FormContact, model.EntityRef{}, &gatewaytest.Fake{})
	require.NoError(t, err)

	w.Update("name", "Asha")
	w.Update("name", "Ravi")

	assert.Equal(t, "Ravi", w.Fields().Get("name"))
}

func TestUpdate_DoesNotSubmit(t *testing.T) {
	gw := &gatewaytest.Fake{}
	w := newFilled(t, model.FormContact, gw)

	assert.Zero(t, gw.CallCount())
	assert.False(t, w.IsSubmitting())
}

func TestSubmit_DuplicateIsDropped(t *testing.T) {
	for _, kind := range model.FormKinds {
		t.Run(kind.String(), func(t *testing.T) {
			gw := gatewaytest.Blocking("ok")
			w := newFilled(t, kind, gw)

			done, err := w.Dispatch(context.Background())
			require.NoError(t, err)
			assert.True(t, w.IsSubmitting(), "submitting flag must be set before Dispatch returns")

			_, err = w.Dispatch(context.Background())
			assert.ErrorIs(t, err, ErrSubmissionInFlight)
			_, err = w.Submit(context.Background())
			assert.ErrorIs(t, err, ErrSubmissionInFlight)

			<-gw.Started
			close(gw.Release)
			out := <-done

			assert.True(t, out.Succeeded())
			assert.Equal(t, 1, gw.CallCount())
		})
	}
}

func TestSubmit_ConcurrentCallersDispatchOnce(t *testing.T) {
	gw := gatewaytest.Blocking("ok")
	w := newFilled(t, model.FormApplication, gw)

	const callers = 20
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.Dispatch(context.Background())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	accepted := 0
	for err := range errs {
		if err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, ErrSubmissionInFlight)
		}
	}
	assert.Equal(t, 1, accepted)

	close(gw.Release)
	require.Eventually(t, func() bool { return !w.IsSubmitting() }, time.Second, time.Millisecond)
	assert.Equal(t, 1, gw.CallCount())
}

func TestSubmit_Success(t *testing.T) {
	gw := gatewaytest.Succeeding("Your courses application has been submitted successfully!")
	notes := &recorder{}
	closed := 0
	w := newFilled(t, model.FormApplication, gw, WithNotifier(notes), WithOnSuccess(func() { closed++ }))

	out, err := w.Submit(context.Background())
	require.NoError(t, err)

	assert.True(t, out.Succeeded())
	assert.NotEmpty(t, out.RequestID)
	assert.Equal(t, model.EmptyFieldSet(model.FormApplication), w.Fields())
	assert.False(t, w.IsSubmitting())
	assert.Equal(t, 1, closed)
	assert.Equal(t, []Notification{{
		Kind:    model.FormApplication,
		Level:   LevelSuccess,
		Message: "Your courses application has been submitted successfully!",
	}}, notes.all())
}

func TestSubmit_Failure(t *testing.T) {
	tests := []struct {
		name string
		kind model.FormKind
		gw   *gatewaytest.Fake
	}{
		{
			name: "refused application",
			kind: model.FormApplication,
			gw:   &gatewaytest.Fake{Result: model.SubmissionResult{Success: false, Message: "full"}},
		},
		{
			name: "registration call error",
			kind: model.FormEventRegistration,
			gw:   &gatewaytest.Fake{Err: errors.New("connection refused")},
		},
		{
			name: "contact gateway panic",
			kind: model.FormContact,
			gw:   &gatewaytest.Fake{Panic: "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &recorder{}
			closed := false
			w := newFilled(t, tt.kind, tt.gw, WithNotifier(notes), WithOnSuccess(func() { closed = true }))
			before := w.Fields()

			out, err := w.Submit(context.Background())
			require.NoError(t, err)

			assert.False(t, out.Succeeded())
			assert.Equal(t, before, w.Fields())
			assert.False(t, w.IsSubmitting())
			assert.False(t, closed)
			assert.Equal(t, []Notification{{
				Kind:    tt.kind,
				Level:   LevelError,
				Message: FallbackMessage(tt.kind),
			}}, notes.all())
		})
	}
}

func TestSubmit_PanicBecomesError(t *testing.T) {
	w := newFilled(t, model.FormContact, &gatewaytest.Fake{Panic: "boom"})

	out, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.ErrorContains(t, out.Err, "boom")
}

func TestSubmit_RetryAfterFailure(t *testing.T) {
	gw := &gatewaytest.Fake{Err: errors.New("timeout")}
	w := newFilled(t, model.FormContact, gw)

	out, err := w.Submit(context.Background())
	require.NoError(t, err)
	require.False(t, out.Succeeded())

	gw.Err = nil
	gw.Result = model.SubmissionResult{Success: true, Message: "thanks"}
	out, err = w.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Succeeded())
	assert.Equal(t, 2, gw.CallCount())
}

func TestSubmit_ValidationError(t *testing.T) {
	gw := &gatewaytest.Fake{}
	w, err := New(model.FormApplication, coursesRef, gw)
	require.NoError(t, err)
	w.Update("name", "Asha")

	_, err = w.Submit(context.Background())

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email", "phone", "experienceLevel", "motivation"}, verr.Missing)
	assert.Zero(t, gw.CallCount())
	assert.False(t, w.IsSubmitting())
}

func TestSubmit_StaleAfterDiscard(t *testing.T) {
	gw := gatewaytest.Blocking("ok")
	notes := &recorder{}
	closed := false
	w := newFilled(t, model.FormEventRegistration, gw, WithNotifier(notes), WithOnSuccess(func() { closed = true }))
	before := w.Fields()

	done, err := w.Dispatch(context.Background())
	require.NoError(t, err)
	<-gw.Started

	w.Discard()
	close(gw.Release)
	out := <-done

	assert.True(t, out.Stale)
	assert.False(t, out.Succeeded())
	assert.Empty(t, notes.all())
	assert.False(t, closed)
	assert.Equal(t, before, w.Fields())

	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrDiscarded)
}

func TestSubmit_CallerContextEndsFirst(t *testing.T) {
	gw := gatewaytest.Blocking("ok")
	notes := &recorder{}
	w := newFilled(t, model.FormContact, gw, WithNotifier(notes))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := w.Submit(ctx)
		errc <- err
	}()

	<-gw.Started
	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)
	assert.True(t, w.IsSubmitting())

	close(gw.Release)
	require.Eventually(t, func() bool { return len(notes.all()) == 1 }, time.Second, time.Millisecond)
	assert.False(t, w.IsSubmitting())
	assert.Equal(t, model.EmptyFieldSet(model.FormContact), w.Fields())
}

func TestSubmit_EditsDuringSubmissionKeptOnFailure(t *testing.T) {
	gw := gatewaytest.Blocking("")
	gw.Result = model.SubmissionResult{Success: false}
	w := newFilled(t, model.FormEventRegistration, gw)

	done, err := w.Dispatch(context.Background())
	require.NoError(t, err)
	<-gw.Started
	w.Update("organization", "GNDU")
	close(gw.Release)
	<-done

	assert.Equal(t, "GNDU", w.Fields().Get("organization"))
	assert.Empty(t, gw.Calls()[0].Fields.Get("organization"))
}

func TestScenario_Application(t *testing.T) {
	gw := gateway.NewSimulated(gateway.WithLatency(0, 0, 0))
	w := newFilled(t, model.FormApplication, gw)

	out, err := w.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.SubmissionResult{
		Success: true,
		Message: "Your courses application has been submitted successfully!",
	}, out.Result)
	assert.Equal(t, model.EmptyFieldSet(model.FormApplication), w.Fields())
}

func TestScenario_ApplicationRequest(t *testing.T) {
	gw := gatewaytest.Succeeding("ok")
	w := newFilled(t, model.FormApplication, gw)

	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	calls := gw.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "SubmitApplication", calls[0].Method)
	assert.Equal(t, "courses", calls[0].ProgramLabel)
	assert.Equal(t, "Technology Courses", calls[0].Fields.Get(model.FieldProgram))
	assert.Equal(t, "beginner", calls[0].Fields.Get(model.FieldExperienceLevel))
}

func TestScenario_RegistrationWithoutOrganization(t *testing.T) {
	gw := gatewaytest.Succeeding(gateway.RegistrationAcknowledgement)
	w := newFilled(t, model.FormEventRegistration, gw)

	out, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Succeeded())

	calls := gw.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "haryanahack-2024", calls[0].EntityID)
	assert.Empty(t, calls[0].Fields.Get(model.FieldOrganization))
}

func TestScenario_ContactSubjectIgnored(t *testing.T) {
	gw := gateway.NewSimulated(gateway.WithLatency(0, 0, 0))
	w := newFilled(t, model.FormContact, gw)

	out, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, gateway.ContactAcknowledgement, out.Result.Message)
}

func TestFallbackMessage(t *testing.T) {
	assert.Equal(t, "Something went wrong. Please try again.", FallbackMessage(model.FormApplication))
	assert.Equal(t, "Registration failed. Please try again.", FallbackMessage(model.FormEventRegistration))
	assert.Equal(t, "Failed to send message. Please try again.", FallbackMessage(model.FormContact))
	assert.NotEmpty(t, FallbackMessage(model.FormKind("other")))
}
