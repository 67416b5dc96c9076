package githubgql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Strob0t/timerbridge/internal/port/projectboard"
)

// Compile-time interface check.
var _ projectboard.ItemLookup = (*Client)(nil)

type queryRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func TestLookupItem(t *testing.T) {
	var gotAuth string
	var gotReq queryRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"node":{
			"id":"PVTI_1",
			"fieldValueByName":{"name":"In Progress"},
			"content":{
				"number":12,
				"title":"Fix login",
				"url":"https://github.com/owner/repo/issues/12",
				"assignees":{"nodes":[{"login":"alice"},{"login":"bob"}]},
				"repository":{"nameWithOwner":"owner/repo"}
			}
		}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "ghs_test")
	node, err := c.LookupItem(context.Background(), "PVTI_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "bearer ghs_test" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}
	if gotReq.Variables["id"] != "PVTI_1" {
		t.Fatalf("expected id variable PVTI_1, got %v", gotReq.Variables["id"])
	}
	if !strings.Contains(gotReq.Query, `fieldValueByName(name: "Status")`) {
		t.Fatalf("expected Status field in query, got %s", gotReq.Query)
	}
	for _, want := range []string{"$id:ID!", "node(id: $id)", "assignees(first: 10)", "... on Issue", "nameWithOwner"} {
		if !strings.Contains(gotReq.Query, want) {
			t.Fatalf("expected %q in query, got %s", want, gotReq.Query)
		}
	}

	status, ok := node.Status()
	if !ok || status != "In Progress" {
		t.Fatalf("expected status In Progress, got %q", status)
	}
	issue := node.Issue()
	if issue == nil {
		t.Fatal("expected linked issue")
	}
	if *issue.Number != 12 {
		t.Fatalf("expected issue 12, got %d", *issue.Number)
	}
	if logins := issue.AssigneeLogins(); len(logins) != 2 || logins[0] != "alice" {
		t.Fatalf("unexpected assignees %v", logins)
	}
	if repo, _ := issue.RepoFullName(); repo != "owner/repo" {
		t.Fatalf("expected owner/repo, got %q", repo)
	}
}

func TestLookupItemNullNode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"node":null}}`))
	}))
	defer srv.Close()

	node, err := NewClient(srv.URL, "tok").LookupItem(context.Background(), "PVTI_x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node != nil {
		t.Fatalf("expected nil node, got %+v", node)
	}
	if _, ok := node.Status(); ok {
		t.Fatal("expected no status on nil node")
	}
}

func TestLookupItemGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":null,"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a node with the global id of 'x'"}]}`))
	}))
	defer srv.Close()

	node, err := NewClient(srv.URL, "tok").LookupItem(context.Background(), "x")
	if err == nil {
		t.Fatal("expected error")
	}
	if node != nil {
		t.Fatalf("expected no node, got %+v", node)
	}
	if !strings.Contains(err.Error(), "Could not resolve") {
		t.Fatalf("expected message in error, got %v", err)
	}
}

func TestLookupItemHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad").LookupItem(context.Background(), "PVTI_1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "Bad credentials") {
		t.Fatalf("expected status and body in error, got %v", err)
	}
}

func TestLookupItemMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "tok").LookupItem(context.Background(), "PVTI_1"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLookupItemNoToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").LookupItem(context.Background(), "PVTI_1")
	if !errors.Is(err, projectboard.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if called {
		t.Fatal("expected no request without a token")
	}
}

func TestLookupItemNullLevels(t *testing.T) {
	tests := []struct {
		name       string
		node       string
		wantStatus bool
		wantIssue  bool
		wantRepo   bool
	}{
		{
			name:      "status not set",
			node:      `{"id":"PVTI_1","fieldValueByName":null,"content":{"number":3,"title":"t","url":"u","assignees":{"nodes":[]},"repository":{"nameWithOwner":"o/r"}}}`,
			wantIssue: true,
			wantRepo:  true,
		},
		{
			name:       "pull request content",
			node:       `{"id":"PVTI_1","fieldValueByName":{"name":"In Progress"},"content":{}}`,
			wantStatus: true,
		},
		{
			name:       "no content",
			node:       `{"id":"PVTI_1","fieldValueByName":{"name":"In Progress"},"content":null}`,
			wantStatus: true,
		},
		{
			name:       "issue without repository",
			node:       `{"id":"PVTI_1","fieldValueByName":{"name":"In Progress"},"content":{"number":3,"title":"t","url":"u","assignees":{"nodes":[null,{"login":"carol"}]},"repository":null}}`,
			wantStatus: true,
			wantIssue:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"data":{"node":` + tt.node + `}}`))
			}))
			defer srv.Close()

			node, err := NewClient(srv.URL, "tok").LookupItem(context.Background(), "PVTI_1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := node.Status(); ok != tt.wantStatus {
				t.Fatalf("status present = %v, want %v", ok, tt.wantStatus)
			}
			issue := node.Issue()
			if (issue != nil) != tt.wantIssue {
				t.Fatalf("issue present = %v, want %v", issue != nil, tt.wantIssue)
			}
			if issue == nil {
				return
			}
			if _, ok := issue.RepoFullName(); ok != tt.wantRepo {
				t.Fatalf("repo present = %v, want %v", ok, tt.wantRepo)
			}
			if logins := issue.AssigneeLogins(); logins == nil {
				t.Fatal("expected non-nil assignee list")
			}
		})
	}
}
