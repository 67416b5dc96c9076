// Package webhook defines the GitHub webhook payloads consumed by timerbridge.
package webhook

// EventKind is the GitHub event name (X-GitHub-Event / GITHUB_EVENT_NAME).
type EventKind string

const (
	EventProjectItem EventKind = "project_v2_item"
	EventIssues      EventKind = "issues"
)

// Project item actions that can change the Status field.
const (
	ProjectItemEdited    = "edited"
	ProjectItemConverted = "converted"
)

// Issue actions that map onto timer transitions.
const (
	IssueAssigned   = "assigned"
	IssueClosed     = "closed"
	IssueUnassigned = "unassigned"
)
