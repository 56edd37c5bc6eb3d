package shell

// LazyStatus is the tag of a Lazy value.
type LazyStatus int

const (
	LazyPending LazyStatus = iota // never requested
	LazyLoading                   // load started, not resolved
	LazyReady                     // resolved and cached
)

// Lazy is a view that is loaded on first use and cached afterwards.
// Callers render a placeholder unless Status is LazyReady.
type Lazy[T any] struct {
	status LazyStatus
	value  T
}

// Status returns the current tag.
func (l *Lazy[T]) Status() LazyStatus {
	return l.status
}

// Start moves a pending value to loading. It returns true only for the call
// that should actually kick off the load.
func (l *Lazy[T]) Start() bool {
	if l.status != LazyPending {
		return false
	}
	l.status = LazyLoading
	return true
}

// Resolve caches v. A value that is already ready is kept.
func (l *Lazy[T]) Resolve(v T) bool {
	if l.status == LazyReady {
		return false
	}
	l.value = v
	l.status = LazyReady
	return true
}

// Get returns the cached value and whether it is ready.
func (l *Lazy[T]) Get() (T, bool) {
	return l.value, l.status == LazyReady
}
