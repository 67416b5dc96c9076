// Package githubgql implements projectboard.ItemLookup against the GitHub
// GraphQL API.
package githubgql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shurcooL/githubv4"

	tbotel "github.com/Strob0t/timerbridge/internal/adapter/otel"
	"github.com/Strob0t/timerbridge/internal/port/projectboard"
)

// projectItemQuery fetches the Status value and linked issue of a project
// item. Every object level is a pointer so GitHub's nulls stay visible.
type projectItemQuery struct {
	Node *struct {
		ProjectV2Item struct {
			ID               string
			FieldValueByName *struct {
				SingleSelect struct {
					Name *string
				} `graphql:"... on ProjectV2ItemFieldSingleSelectValue"`
			} `graphql:"fieldValueByName(name: \"Status\")"`
			Content *struct {
				Issue struct {
					Number    *int
					Title     *string
					URL       *string
					Assignees *struct {
						Nodes []*struct {
							Login string
						}
					} `graphql:"assignees(first: 10)"`
					Repository *struct {
						NameWithOwner string
					}
				} `graphql:"... on Issue"`
			}
		} `graphql:"... on ProjectV2Item"`
	} `graphql:"node(id: $id)"`
}

// ID is a node ID variable. The query declares variables by Go type name,
// so this renders as ID!.
type ID string

// Client resolves project items through githubv4.
type Client struct {
	token string
	gql   *githubv4.Client
}

// NewClient creates a client for the given GraphQL endpoint and token.
// Outbound requests are traced.
func NewClient(endpoint, token string) *Client {
	httpClient := &http.Client{
		Transport: &bearerTransport{token: token, base: tbotel.Transport(nil)},
	}
	return &Client{
		token: token,
		gql:   githubv4.NewEnterpriseClient(endpoint, httpClient),
	}
}

// bearerTransport adds the GitHub token to every request.
type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "bearer "+t.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	return t.base.RoundTrip(req)
}

// LookupItem resolves a project item by node ID. A null node yields nil
// without an error.
func (c *Client) LookupItem(ctx context.Context, nodeID string) (*projectboard.ItemNode, error) {
	if c.token == "" {
		return nil, projectboard.ErrNoToken
	}

	ctx, span := tbotel.StartLookupSpan(ctx, nodeID)
	node, err := c.lookupItem(ctx, nodeID)
	tbotel.EndSpan(span, err)
	return node, err
}

func (c *Client) lookupItem(ctx context.Context, nodeID string) (*projectboard.ItemNode, error) {
	var q projectItemQuery
	vars := map[string]any{"id": ID(nodeID)}
	if err := c.gql.Query(ctx, &q, vars); err != nil {
		return nil, fmt.Errorf("github graphql: %w", err)
	}
	return toItemNode(&q), nil
}

func toItemNode(q *projectItemQuery) *projectboard.ItemNode {
	if q.Node == nil {
		return nil
	}
	item := q.Node.ProjectV2Item
	node := &projectboard.ItemNode{ID: item.ID}

	if fv := item.FieldValueByName; fv != nil {
		node.FieldValueByName = &projectboard.FieldValue{Name: fv.SingleSelect.Name}
	}

	if item.Content != nil {
		issue := item.Content.Issue
		content := &projectboard.Content{
			Number: issue.Number,
			Title:  issue.Title,
			URL:    issue.URL,
		}
		if issue.Assignees != nil {
			conn := &projectboard.AssigneeConnection{}
			for _, a := range issue.Assignees.Nodes {
				if a == nil {
					conn.Nodes = append(conn.Nodes, nil)
					continue
				}
				conn.Nodes = append(conn.Nodes, &projectboard.Assignee{Login: a.Login})
			}
			content.Assignees = conn
		}
		if issue.Repository != nil {
			content.Repository = &projectboard.Repository{NameWithOwner: issue.Repository.NameWithOwner}
		}
		node.Content = content
	}

	return node
}
