// Package access decides whether the current user may use the chat shell.
//
// A single permission check is issued per shell mount. Its outcome is data,
// not an error: every failure or denial maps to a State value so the shell
// can render a deterministic panel for it.
package access

// State is the outcome of the authorization check for one mount.
// Only Loading is non-terminal.
type State int

const (
	StateLoading State = iota
	StateRequestFailed
	StateDeniedNotInNetwork
	StateDeniedNotAllowed
	StateAllowed
)

// Response codes returned by the permission service.
const (
	CodeAllowed      = 0
	CodeNotInNetwork = 403
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateRequestFailed:
		return "RequestFailed"
	case StateDeniedNotInNetwork:
		return "DeniedNotInNetwork"
	case StateDeniedNotAllowed:
		return "DeniedNotAllowed"
	case StateAllowed:
		return "Allowed"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether s is a resolved outcome.
func (s State) IsTerminal() bool {
	return s != StateLoading
}

// Response is the permission service payload. Msg is informational only.
// Code is nil when the service omitted it or sent null.
type Response struct {
	Code *int   `json:"code"`
	Msg  string `json:"msg"`
}

// NewResponse builds a Response carrying code.
func NewResponse(code int, msg string) *Response {
	return &Response{Code: &code, Msg: msg}
}

// CodeValue returns the response code and whether one was present.
func (r *Response) CodeValue() (int, bool) {
	if r == nil || r.Code == nil {
		return 0, false
	}
	return *r.Code, true
}

// Classify maps a checker result to a State. A transport error always wins;
// a missing code or anything other than the two recognized codes is a plain
// denial.
func Classify(resp *Response, err error) State {
	if err != nil {
		return StateRequestFailed
	}
	code, ok := resp.CodeValue()
	if !ok {
		return StateDeniedNotAllowed
	}
	switch code {
	case CodeAllowed:
		return StateAllowed
	case CodeNotInNetwork:
		return StateDeniedNotInNetwork
	default:
		return StateDeniedNotAllowed
	}
}
