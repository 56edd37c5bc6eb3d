// Package router tracks which of the shell's three paths is active and
// parses the launch location the shell was opened with.
package router

import (
	"net/url"
	"strings"

	"github.com/zhubert/chatgate/internal/logger"
)

// Path is a navigable location inside the shell.
type Path string

const (
	Home     Path = "/"
	Chat     Path = "/chat"
	Settings Path = "/settings"
)

// ParsePath maps a fragment such as "/chat" or "#/settings" to a Path.
// Unknown paths resolve to Home.
func ParsePath(s string) Path {
	s = strings.TrimPrefix(s, "#")
	if i := strings.IndexAny(s, "?"); i >= 0 {
		s = s[:i]
	}
	if s != "/" {
		s = strings.TrimSuffix(s, "/")
	}
	switch Path(s) {
	case Chat:
		return Chat
	case Settings:
		return Settings
	default:
		return Home
	}
}

// Location is what the shell learns from its launch URL.
type Location struct {
	Signature string
	Path      Path
}

// ParseLocation extracts the signature query parameter and the initial path
// from a launch URL like "https://chat.example.com/?signature=abc#/chat".
// A missing signature is the empty string. A bare query string such as
// "?signature=abc" is accepted too.
func ParseLocation(raw string) (Location, error) {
	loc := Location{Path: Home}
	if raw == "" {
		return loc, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return loc, err
	}
	loc.Signature = u.Query().Get("signature")
	if u.Fragment != "" {
		loc.Path = ParsePath(u.Fragment)
	}
	return loc, nil
}

// Router holds the active path. Navigation is the only way to change it.
type Router struct {
	current  Path
	onChange func(from, to Path)
}

// New creates a router starting at path.
func New(path Path) *Router {
	return &Router{current: path}
}

// Location returns the active path.
func (r *Router) Location() Path {
	return r.current
}

// IsHome reports whether the active path is Home.
func (r *Router) IsHome() bool {
	return r.current == Home
}

// OnChange registers a callback invoked after every navigation that moves.
func (r *Router) OnChange(fn func(from, to Path)) {
	r.onChange = fn
}

// Navigate moves to path. It reports whether the active path changed.
func (r *Router) Navigate(path Path) bool {
	if path == r.current {
		return false
	}
	from := r.current
	r.current = path
	logger.WithComponent("router").Debug("navigate", "from", from, "to", path)
	if r.onChange != nil {
		r.onChange(from, path)
	}
	return true
}
