package webhook

// These are minimal structs that extract only the fields the timer bridge
// needs. Nested objects are pointers: GitHub omits or nulls them depending on
// the action, and absence is handled by the caller.

// User is a GitHub user reference (assignee, sender).
type User struct {
	Login string `json:"login"`
}

// Repository is a GitHub repository reference.
type Repository struct {
	FullName string `json:"full_name"` // "owner/repo"
}

// Issue is the issue object inside an issues event.
type Issue struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
}

// IssuesPayload is the webhook payload for an "issues" event.
type IssuesPayload struct {
	Action     string      `json:"action"`
	Issue      *Issue      `json:"issue"`
	Assignee   *User       `json:"assignee"`
	Repository *Repository `json:"repository"`
}

// ProjectItem is the project_v2_item object of a project item event.
type ProjectItem struct {
	ID          int64  `json:"id"`
	NodeID      string `json:"node_id"`
	ContentType string `json:"content_type"` // Issue, PullRequest, DraftIssue
}

// ProjectItemPayload is the webhook payload for a "project_v2_item" event.
// GitHub delivers the item under "projects_v2_item"; the singular key is
// accepted as well for hand-built payloads.
type ProjectItemPayload struct {
	Action       string       `json:"action"`
	ProjectItem  *ProjectItem `json:"project_v2_item"`
	ProjectsItem *ProjectItem `json:"projects_v2_item"`
}

// Item returns the project item, or nil when the payload carries none.
func (p *ProjectItemPayload) Item() *ProjectItem {
	if p.ProjectItem != nil {
		return p.ProjectItem
	}
	return p.ProjectsItem
}
