package shell

import "github.com/zhubert/chatgate/internal/access"

// Screen is the single top-level view the shell renders.
type Screen int

const (
	// ScreenPlaceholder is the pre-hydration placeholder with the logo.
	ScreenPlaceholder Screen = iota
	// ScreenBlank is rendered while the permission check is in flight.
	// It is deliberately distinct from ScreenPlaceholder.
	ScreenBlank
	ScreenRequestFailed
	ScreenNotInNetwork
	ScreenNotInHost
	ScreenNotAllowed
	ScreenApp
)

// String returns a human-readable name for the screen
func (s Screen) String() string {
	switch s {
	case ScreenPlaceholder:
		return "Placeholder"
	case ScreenBlank:
		return "Blank"
	case ScreenRequestFailed:
		return "RequestFailed"
	case ScreenNotInNetwork:
		return "NotInNetwork"
	case ScreenNotInHost:
		return "NotInHost"
	case ScreenNotAllowed:
		return "NotAllowed"
	case ScreenApp:
		return "App"
	default:
		return "Unknown"
	}
}

// IsTerminalPanel reports whether s is one of the four failure/deny panels.
func (s Screen) IsTerminalPanel() bool {
	switch s {
	case ScreenRequestFailed, ScreenNotInNetwork, ScreenNotInHost, ScreenNotAllowed:
		return true
	}
	return false
}

// Inputs is everything the precedence decision depends on.
type Inputs struct {
	Hydrated bool
	Loading  bool
	Access   access.State
	Host     bool
}

// Decide picks the screen. The order is fixed and the first match wins:
//
//  1. not hydrated        -> placeholder
//  2. check in flight     -> blank
//  3. request failed      -> failure panel
//  4. network deny        -> network panel
//  5. outside host app    -> host panel
//  6. not allowed         -> request-access panel
//  7. otherwise           -> the routed application
//
// Host detection sits after the network deny and before the allow-list deny.
func Decide(in Inputs) Screen {
	switch {
	case !in.Hydrated:
		return ScreenPlaceholder
	case in.Loading:
		return ScreenBlank
	case in.Access == access.StateRequestFailed:
		return ScreenRequestFailed
	case in.Access == access.StateDeniedNotInNetwork:
		return ScreenNotInNetwork
	case !in.Host:
		return ScreenNotInHost
	case in.Access == access.StateDeniedNotAllowed:
		return ScreenNotAllowed
	case in.Access == access.StateAllowed:
		return ScreenApp
	default:
		// Loading with no check in flight: nothing resolved yet.
		return ScreenBlank
	}
}
