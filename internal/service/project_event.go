package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/Strob0t/timerbridge/internal/domain/timer"
	"github.com/Strob0t/timerbridge/internal/domain/webhook"
)

// InProgressStatus is the project Status value that starts a timer.
const InProgressStatus = "In Progress"

var errNoProjectItem = errors.New("payload has no project item")

// HandleProjectItemEvent starts a timer when a project item linked to an
// issue is in the "In Progress" column. The item's current status is read
// from the GraphQL API since the webhook does not carry it.
func (s *TimerService) HandleProjectItemEvent(ctx context.Context, payload []byte) timer.Result {
	var p webhook.ProjectItemPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		slog.ErrorContext(ctx, "malformed project item payload", "error", err)
		return timer.Failed("malformed payload", nil, err)
	}

	item := p.Item()
	contentType := ""
	if item != nil {
		contentType = item.ContentType
	}
	slog.InfoContext(ctx, "project item event", "action", p.Action, "content_type", contentType)

	if p.Action != webhook.ProjectItemEdited && p.Action != webhook.ProjectItemConverted {
		slog.InfoContext(ctx, "project action skipped", "action", p.Action)
		return timer.Skipped("project action " + p.Action)
	}

	if item == nil || item.NodeID == "" {
		slog.ErrorContext(ctx, "project item event without item node id")
		return timer.Failed("missing project item", nil, errNoProjectItem)
	}

	node, err := s.items.LookupItem(ctx, item.NodeID)
	if err != nil {
		slog.ErrorContext(ctx, "fetching project item status failed", "node_id", item.NodeID, "error", err)
		return timer.Failed("project item lookup failed", nil, err)
	}

	status, _ := node.Status()
	slog.InfoContext(ctx, "current status", "status", status)

	if status != InProgressStatus {
		slog.InfoContext(ctx, "status is not In Progress, skipping timer", "status", status)
		return timer.Skipped("status " + status)
	}

	issue := node.Issue()
	if issue == nil {
		slog.InfoContext(ctx, "no issue content found", "content_type", contentType)
		return timer.Skipped("no issue content")
	}

	repo, ok := issue.RepoFullName()
	if !ok {
		slog.InfoContext(ctx, "linked issue has no repository", "issue", *issue.Number)
		return timer.Skipped("no repository")
	}

	slog.InfoContext(ctx, "starting timer", "issue", *issue.Number, "title", issue.IssueTitle(), "repo", repo)

	return s.deliver(ctx, &timer.Action{
		Action:       timer.ActionStart,
		IssueNumber:  *issue.Number,
		IssueURL:     issue.IssueURL(),
		RepoFullName: repo,
		Assignees:    issue.AssigneeLogins(),
		Status:       status,
	})
}
