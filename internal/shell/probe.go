package shell

import (
	"os"
	"strings"
)

// ViewportClass selects between the two layouts.
type ViewportClass int

const (
	ViewportWide ViewportClass = iota
	ViewportCompact
)

// String returns a human-readable name for the class
func (v ViewportClass) String() string {
	if v == ViewportCompact {
		return "Compact"
	}
	return "Wide"
}

// DefaultCompactThreshold is the terminal width, in columns, below which the
// compact layout is used.
const DefaultCompactThreshold = 80

// ClassifyViewport returns Compact for widths strictly below threshold.
func ClassifyViewport(width, threshold int) ViewportClass {
	if width < threshold {
		return ViewportCompact
	}
	return ViewportWide
}

// HostMarkers are the two substrings that must both appear in the user agent
// for the client to count as running inside the host application.
type HostMarkers struct {
	Outer string // host container, e.g. "micromessenger"
	Inner string // workspace flavour of the host, e.g. "wxwork"
}

// DefaultHostMarkers identify the enterprise workspace build of the host.
var DefaultHostMarkers = HostMarkers{Outer: "micromessenger", Inner: "wxwork"}

// IsHostApp reports whether userAgent carries both host markers.
// Matching is case-insensitive. An empty user agent never matches.
func IsHostApp(userAgent string, markers HostMarkers) bool {
	if userAgent == "" {
		return false
	}
	ua := strings.ToLower(userAgent)
	return strings.Contains(ua, strings.ToLower(markers.Outer)) &&
		strings.Contains(ua, strings.ToLower(markers.Inner))
}

// Environment is a snapshot of client facts taken after hydration.
type Environment struct {
	Host     bool
	Viewport ViewportClass
}

// Probe answers environment questions. UserAgent is consulted on every
// Snapshot so a changed identity is never masked by a cached answer.
type Probe struct {
	UserAgent func() string
	Markers   HostMarkers
	Threshold int
}

// NewProbe creates a probe with a fixed user agent.
func NewProbe(userAgent string, markers HostMarkers, threshold int) *Probe {
	return &Probe{
		UserAgent: func() string { return userAgent },
		Markers:   markers,
		Threshold: threshold,
	}
}

// Snapshot evaluates host detection and the viewport class for width.
func (p *Probe) Snapshot(width int) Environment {
	ua := ""
	if p.UserAgent != nil {
		ua = p.UserAgent()
	}
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultCompactThreshold
	}
	return Environment{
		Host:     IsHostApp(ua, p.Markers),
		Viewport: ClassifyViewport(width, threshold),
	}
}

// TerminalUserAgent builds an identifying string for the current terminal
// session from the environment, the closest thing a terminal has to a
// browser user agent. An explicit override always wins.
func TerminalUserAgent(override string) string {
	if override != "" {
		return override
	}
	parts := []string{"chatgate"}
	for _, key := range []string{"TERM_PROGRAM", "TERM", "LC_TERMINAL"} {
		if v := os.Getenv(key); v != "" {
			parts = append(parts, key+"="+v)
		}
	}
	return strings.Join(parts, " ")
}
