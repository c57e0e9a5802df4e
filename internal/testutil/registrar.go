package testutil

import (
	"context"
	"sync"

	"github.com/swalay/labelctl/internal/labels"
)

// Registrar is a labels.Registrar that records calls and replies with a
// canned response.
type Registrar struct {
	mu       sync.Mutex
	calls    []labels.Registration
	Response labels.Response
	Err      error
}

// Succeeding returns a registrar that accepts every registration.
func Succeeding() *Registrar {
	return &Registrar{Response: labels.Response{Success: true}}
}

// Rejecting returns a registrar that answers success=false with message.
func Rejecting(message string) *Registrar {
	return &Registrar{Response: labels.Response{Success: false, Message: message}}
}

// Failing returns a registrar whose calls fail with err.
func Failing(err error) *Registrar {
	return &Registrar{Err: err}
}

// AddLabel records reg and returns the canned reply.
func (r *Registrar) AddLabel(_ context.Context, reg labels.Registration) (labels.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, reg)
	return r.Response, r.Err
}

// Calls returns the registrations received so far.
func (r *Registrar) Calls() []labels.Registration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]labels.Registration(nil), r.calls...)
}
