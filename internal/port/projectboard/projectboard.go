// Package projectboard defines the port for resolving GitHub project board
// items (Projects v2) to their status and linked issue.
package projectboard

import (
	"context"
	"errors"
)

// ErrNoToken is returned when no GitHub token is available for the lookup.
var ErrNoToken = errors.New("projectboard: github token not configured")

// StatusField is the single-select project field that drives the timer.
const StatusField = "Status"

// ItemNode is a project item as returned by the GraphQL API. Every level is
// optional: GitHub returns null for missing fields, non-single-select values
// and non-issue content.
type ItemNode struct {
	ID               string
	FieldValueByName *FieldValue
	Content          *Content
}

// FieldValue is the single-select value of a named field.
type FieldValue struct {
	Name *string
}

// Content is the item's linked content. Only Issue content populates the
// fields; pull requests and draft issues decode to an empty Content.
type Content struct {
	Number     *int
	Title      *string
	URL        *string
	Assignees  *AssigneeConnection
	Repository *Repository
}

// AssigneeConnection is the first page of issue assignees.
type AssigneeConnection struct {
	Nodes []*Assignee
}

// Assignee is an issue assignee.
type Assignee struct {
	Login string
}

// Repository is the repository owning the issue.
type Repository struct {
	NameWithOwner string
}

// Status returns the item's status value, if it has one.
func (n *ItemNode) Status() (string, bool) {
	if n == nil || n.FieldValueByName == nil || n.FieldValueByName.Name == nil {
		return "", false
	}
	return *n.FieldValueByName.Name, true
}

// Issue returns the linked issue, or nil when the item has no issue content.
func (n *ItemNode) Issue() *Content {
	if n == nil || n.Content == nil || n.Content.Number == nil {
		return nil
	}
	return n.Content
}

// IssueTitle returns the title or an empty string.
func (c *Content) IssueTitle() string {
	if c == nil || c.Title == nil {
		return ""
	}
	return *c.Title
}

// IssueURL returns the URL or an empty string.
func (c *Content) IssueURL() string {
	if c == nil || c.URL == nil {
		return ""
	}
	return *c.URL
}

// RepoFullName returns the "owner/repo" name of the owning repository.
func (c *Content) RepoFullName() (string, bool) {
	if c == nil || c.Repository == nil || c.Repository.NameWithOwner == "" {
		return "", false
	}
	return c.Repository.NameWithOwner, true
}

// AssigneeLogins returns the assignee logins in API order. The result is
// never nil.
func (c *Content) AssigneeLogins() []string {
	logins := []string{}
	if c == nil || c.Assignees == nil {
		return logins
	}
	for _, a := range c.Assignees.Nodes {
		if a != nil && a.Login != "" {
			logins = append(logins, a.Login)
		}
	}
	return logins
}

// ItemLookup resolves project items by GraphQL node ID.
type ItemLookup interface {
	// LookupItem returns the item, or nil if the node does not exist or is
	// not a project item.
	LookupItem(ctx context.Context, nodeID string) (*ItemNode, error)
}
