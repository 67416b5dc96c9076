package service

import (
	"context"

	"github.com/Strob0t/timerbridge/internal/domain/timer"
	"github.com/Strob0t/timerbridge/internal/port/projectboard"
	"github.com/Strob0t/timerbridge/internal/port/timersink"
)

type mockLookup struct {
	node  *projectboard.ItemNode
	err   error
	calls []string
}

func (m *mockLookup) LookupItem(_ context.Context, nodeID string) (*projectboard.ItemNode, error) {
	m.calls = append(m.calls, nodeID)
	return m.node, m.err
}

type mockSender struct {
	sent []*timer.Action
	err  error
}

func (m *mockSender) Send(_ context.Context, a *timer.Action) (*timersink.Receipt, error) {
	m.sent = append(m.sent, a)
	if m.err != nil {
		return nil, m.err
	}
	return &timersink.Receipt{StatusCode: 200, Body: `{"ok":true}`}, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// inProgressNode returns a project item in the "In Progress" column linked
// to issue #12 of owner/repo.
func inProgressNode(status string) *projectboard.ItemNode {
	return &projectboard.ItemNode{
		ID:               "PVTI_1",
		FieldValueByName: &projectboard.FieldValue{Name: strPtr(status)},
		Content: &projectboard.Content{
			Number: intPtr(12),
			Title:  strPtr("Fix login"),
			URL:    strPtr("https://github.com/owner/repo/issues/12"),
			Assignees: &projectboard.AssigneeConnection{Nodes: []*projectboard.Assignee{
				{Login: "alice"}, {Login: "bob"},
			}},
			Repository: &projectboard.Repository{NameWithOwner: "owner/repo"},
		},
	}
}
