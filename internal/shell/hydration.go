// Package shell holds the pure decision logic of the chat shell: when the
// terminal is ready, what the environment looks like, and which single
// screen to render given everything known so far.
//
// Nothing here draws anything. The app package feeds these types with tea
// messages and renders the Screen they select.
package shell

// HydrationGate is false until the first client-ready signal and true
// forever after. Environment-dependent output is suppressed until then.
type HydrationGate struct {
	hydrated bool
}

// Hydrated reports whether the gate has opened.
func (h *HydrationGate) Hydrated() bool {
	return h.hydrated
}

// MarkHydrated opens the gate. It returns true only for the call that
// performed the transition.
func (h *HydrationGate) MarkHydrated() bool {
	if h.hydrated {
		return false
	}
	h.hydrated = true
	return true
}
