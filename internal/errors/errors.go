// Package errors provides chatgate's structured error type. An Error records
// the operation that failed, a Kind callers can branch on, and the underlying
// cause.
package errors

import (
	"errors"
	"fmt"
)

// Op names the failing operation as "package.Function".
type Op string

// Kind categorizes an error. The string form is shown to the user.
type Kind string

const (
	KindUnknown Kind = ""
	KindInvalid Kind = "invalid"
	KindIO      Kind = "I/O error"
	KindNetwork Kind = "network error"
	KindConfig  Kind = "configuration error"
	KindAuth    Kind = "authorization error"
	KindChat    Kind = "chat error"
)

// Error is a failed operation with its category and cause.
type Error struct {
	Op      Op
	Kind    Kind
	Context string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Context != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	case e.Context != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Context)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an Error from any mix of Op, Kind, string (context) and error.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil && e.Context == "" {
		e.Err = errors.New(string(e.Kind))
	}
	return e
}

// Is reports whether any Error in err's chain has the given Kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// GetKind returns the Kind of the outermost Error in err's chain.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Summary is a one-line message for the status bar: the context of a
// structured error without its operation name, or err's text otherwise.
func Summary(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Context == "" {
		return err.Error()
	}
	if e.Kind == KindUnknown {
		return e.Context
	}
	return string(e.Kind) + ": " + e.Context
}

// Authorization

func AuthRequestFailed(endpoint string, err error) error {
	return E(Op("access.ValidUser"), KindNetwork, "request to "+endpoint+" failed", err)
}

func AuthBadStatus(endpoint string, status int) error {
	return E(Op("access.ValidUser"), KindAuth, fmt.Sprintf("%s returned HTTP %d", endpoint, status))
}

func AuthDecodeFailed(endpoint string, err error) error {
	return E(Op("access.ValidUser"), KindInvalid, "undecodable response from "+endpoint, err)
}

func AuthCheckPanicked(v any) error {
	return E(Op("access.Check"), KindAuth, fmt.Sprintf("checker panicked: %v", v))
}

// Configuration

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, "failed to load config from "+path, err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, "failed to save config to "+path, err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Chat

func ChatReplyFailed(model string, err error) error {
	return E(Op("chat.Reply"), KindChat, "no reply from model "+model, err)
}

func ChatEmptyReply(model string) error {
	return E(Op("chat.Reply"), KindChat, "model "+model+" returned no choices")
}

// Navigation

func OpenURLFailed(url string, err error) error {
	return E(Op("navigate.Open"), KindIO, "failed to open "+url, err)
}
