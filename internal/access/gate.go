package access

import (
	"context"
	"sync"

	"github.com/zhubert/chatgate/internal/errors"
	"github.com/zhubert/chatgate/internal/logger"
)

// Checker performs the permission check for a signature. Implementations
// return an error for transport or decoding failures only; denials are
// reported through Response.Code.
type Checker interface {
	ValidUser(ctx context.Context, signature string) (*Response, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, signature string) (*Response, error)

// ValidUser calls f.
func (f CheckerFunc) ValidUser(ctx context.Context, signature string) (*Response, error) {
	return f(ctx, signature)
}

// Gate owns the AccessState of a single shell mount.
//
// The loading flag is separate from the state: it is true only while a check
// is in flight and is what the shell uses to blank its output. State moves
// from StateLoading to exactly one terminal value and never changes again.
type Gate struct {
	mu       sync.Mutex
	state    State
	loading  bool
	started  bool
	resolved bool
}

// NewGate creates a gate in StateLoading with no check in flight.
func NewGate() *Gate {
	return &Gate{state: StateLoading}
}

// Begin marks the check as in flight. It returns false if a check was
// already started for this gate; there is no retry.
func (g *Gate) Begin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return false
	}
	g.started = true
	g.loading = true
	return true
}

// Resolve commits the outcome of the check. The loading flag is cleared
// whatever the outcome. Only the first call commits a state; the returned
// bool reports whether this call did.
func (g *Gate) Resolve(resp *Response, err error) (State, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.resolved {
		return g.state, false
	}
	g.state = Classify(resp, err)
	g.loading = false
	g.resolved = true
	return g.state, true
}

// State returns the current access state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Loading reports whether the check is in flight.
func (g *Gate) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

// Check runs checker once for signature. A panicking checker is reported as
// a request failure so the failure never escapes into the UI loop.
func Check(ctx context.Context, checker Checker, signature string) (resp *Response, err error) {
	log := logger.WithComponent("access")
	defer func() {
		if r := recover(); r != nil {
			resp, err = nil, errors.AuthCheckPanicked(r)
			log.Error("permission check panicked", "panic", r)
		}
	}()

	log.Debug("permission check started", "hasSignature", signature != "")
	resp, err = checker.ValidUser(ctx, signature)
	if err != nil {
		log.Warn("permission check failed", "error", err)
		return nil, err
	}
	if resp != nil {
		code, ok := resp.CodeValue()
		log.Info("permission check answered", "code", code, "hasCode", ok, "msg", resp.Msg)
	}
	return resp, nil
}
