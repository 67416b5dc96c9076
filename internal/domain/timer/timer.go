// Package timer defines the normalized timer actions forwarded to the backend.
package timer

import "errors"

// ActionKind is the timer lifecycle transition requested from the backend.
type ActionKind string

const (
	ActionStart ActionKind = "start_timer"
	ActionStop  ActionKind = "stop_timer"
	ActionPause ActionKind = "pause_timer"
)

// Valid reports whether k is one of the three supported transitions.
func (k ActionKind) Valid() bool {
	switch k {
	case ActionStart, ActionStop, ActionPause:
		return true
	default:
		return false
	}
}

// Action is the normalized record sent downstream. The send timestamp is
// attached by the sender, not stored here.
//
// Assignees is emitted only when non-nil, so project events always carry the
// list (possibly empty) while issue events never do.
type Action struct {
	Action       ActionKind `json:"action"`
	IssueNumber  int        `json:"issue_number"`
	IssueURL     string     `json:"issue_url"`
	RepoFullName string     `json:"repo_full_name"`
	Assignees    []string   `json:"assignees,omitzero"`
	Assignee     string     `json:"assignee,omitempty"`
	Status       string     `json:"status,omitempty"`
}

// ErrUnknownAction is returned for an Action whose kind is not one of the
// supported transitions.
var ErrUnknownAction = errors.New("unknown timer action")

// Outcome classifies how a handler finished.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Result is the outcome of handling one event. It is used for logging and
// tests only and never changes the process exit status.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
	Action  *Action `json:"action,omitempty"`
	Err     error   `json:"-"`
}

// Sent returns a successful result for a.
func Sent(a *Action) Result {
	return Result{Outcome: OutcomeSent, Action: a}
}

// Skipped returns a result for an event that was intentionally ignored.
func Skipped(reason string) Result {
	return Result{Outcome: OutcomeSkipped, Reason: reason}
}

// Failed returns a result for an event whose handling hit an error.
func Failed(reason string, a *Action, err error) Result {
	return Result{Outcome: OutcomeFailed, Reason: reason, Action: a, Err: err}
}

// OK reports whether the event was handled without error. Skips count as OK.
func (r Result) OK() bool { return r.Outcome != OutcomeFailed }
