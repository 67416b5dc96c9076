package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/Strob0t/timerbridge/internal/domain/timer"
	"github.com/Strob0t/timerbridge/internal/domain/webhook"
)

// issueActions maps issue webhook actions onto timer transitions.
// Matching is exact and case-sensitive; anything else is ignored.
var issueActions = map[string]timer.ActionKind{
	webhook.IssueAssigned:   timer.ActionStart,
	webhook.IssueClosed:     timer.ActionStop,
	webhook.IssueUnassigned: timer.ActionPause,
}

var errIncompleteIssue = errors.New("payload missing issue or repository")

// HandleIssueEvent maps an issues event directly to a timer action using
// only the payload fields.
func (s *TimerService) HandleIssueEvent(ctx context.Context, payload []byte) timer.Result {
	var p webhook.IssuesPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		slog.ErrorContext(ctx, "malformed issues payload", "error", err)
		return timer.Failed("malformed payload", nil, err)
	}

	slog.InfoContext(ctx, "issue event", "action", p.Action)

	kind, ok := issueActions[p.Action]
	if !ok {
		slog.InfoContext(ctx, "issue action not handled", "action", p.Action)
		return timer.Skipped("issue action " + p.Action)
	}

	if p.Issue == nil || p.Repository == nil {
		slog.ErrorContext(ctx, "issues event without issue or repository", "action", p.Action)
		return timer.Failed("incomplete payload", nil, errIncompleteIssue)
	}

	a := &timer.Action{
		Action:       kind,
		IssueNumber:  p.Issue.Number,
		IssueURL:     p.Issue.HTMLURL,
		RepoFullName: p.Repository.FullName,
	}
	if p.Assignee != nil {
		a.Assignee = p.Assignee.Login
	}

	slog.InfoContext(ctx, "issue timer transition",
		"issue", p.Issue.Number,
		"title", p.Issue.Title,
		"timer_action", kind,
		"assignee", a.Assignee,
	)

	return s.deliver(ctx, a)
}
