// Package theme keeps the presentation in step with the user's theme
// preference. The only side effect goes through a Sink, so the logic here
// never touches global state directly.
package theme

import (
	"strings"

	"github.com/zhubert/chatgate/internal/logger"
)

// Preference is the persisted theme choice.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
	Auto  Preference = "auto"
)

// Preferences returns all preferences in display order.
func Preferences() []Preference {
	return []Preference{Auto, Light, Dark}
}

// ParsePreference accepts any casing and falls back to Auto for unknown or
// empty input.
func ParsePreference(s string) Preference {
	switch Preference(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light
	case Dark:
		return Dark
	default:
		return Auto
	}
}

// Valid reports whether p is one of the known preferences.
func (p Preference) Valid() bool {
	return p == Light || p == Dark || p == Auto
}

// Class returns the presentation class applied for p, or "" for Auto.
func (p Preference) Class() string {
	switch p {
	case Light, Dark:
		return string(p)
	default:
		return ""
	}
}

// Theme-color hints used under Auto. Explicit preferences use the accent
// color of the active palette for both hints instead.
const (
	AutoDarkColor  = "#151515"
	AutoLightColor = "#fafafa"
)

// Sink applies a preference to the presentation layer.
type Sink interface {
	ApplyTheme(pref Preference)
}

// Synchronizer forwards preference changes to its sink. A shell owns exactly
// one, so there is a single writer to the presentation state.
type Synchronizer struct {
	sink    Sink
	applied Preference
	synced  bool
}

// NewSynchronizer creates a synchronizer for sink.
func NewSynchronizer(sink Sink) *Synchronizer {
	return &Synchronizer{sink: sink}
}

// Sync applies pref if it differs from the last applied preference. The
// first call always applies. It reports whether the sink was called.
func (s *Synchronizer) Sync(pref Preference) bool {
	if !pref.Valid() {
		pref = Auto
	}
	if s.synced && pref == s.applied {
		return false
	}
	logger.WithComponent("theme").Debug("applying theme", "from", s.applied, "to", pref)
	s.sink.ApplyTheme(pref)
	s.applied = pref
	s.synced = true
	return true
}

// Refresh re-applies the current preference even if unchanged. Used when
// something the sink depends on, like the detected terminal background,
// changes underneath it.
func (s *Synchronizer) Refresh() {
	if !s.synced {
		return
	}
	s.sink.ApplyTheme(s.applied)
}

// Applied returns the last applied preference.
func (s *Synchronizer) Applied() Preference {
	return s.applied
}
