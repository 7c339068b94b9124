package domain

import (
	"strings"
	"testing"

	"github.com/troublescope/github2gram/internal/entities"

	"github.com/stretchr/testify/require"
)

const pushBody = `{
	"ref": "refs/heads/main",
	"compare": "https://github.com/org/repo/compare/a...b",
	"repository": {"name": "repo", "full_name": "org/repo", "html_url": "https://github.com/org/repo"},
	"pusher": {"name": "alice"},
	"commits": [
		{"id": "a1", "message": "Fix bug", "author": {"name": "alice"}, "added": ["a.ts"], "removed": [], "modified": []},
		{"id": "b2", "message": "Add feature", "author": {"name": "bob"}, "added": [], "removed": [], "modified": ["b.ts"]}
	]
}`

func TestNormalizePushBranch(t *testing.T) {
	s := normalizeEvent("push", []byte(pushBody))
	require.NotNil(t, s)

	push, ok := s.(*entities.PushSummary)
	require.True(t, ok)
	require.Equal(t, "main", push.Branch)
	require.Equal(t, []string{"Fix bug", "Add feature"}, push.CommitMessages)
	require.Equal(t, []string{"alice", "bob"}, push.Authors)
	require.Contains(t, push.ChangedFiles, "+ a.ts")
	require.Contains(t, push.ChangedFiles, "~ b.ts")
	require.Equal(t, "org/repo", push.Repo())
	require.Equal(t, "https://github.com/org/repo/compare/a...b", push.CompareURL)
	require.Equal(t, "alice", push.Pusher)
}

func TestNormalizePushTagRefFiltered(t *testing.T) {
	body := strings.Replace(pushBody, "refs/heads/main", "refs/tags/v1.0.0", 1)
	require.Nil(t, normalizeEvent("push", []byte(body)))
}

func TestNormalizePushAuthorDedup(t *testing.T) {
	body := `{
		"ref": "refs/heads/dev",
		"repository": {"full_name": "org/repo", "html_url": "u"},
		"pusher": {"name": "alice"},
		"commits": [
			{"message": "one", "author": {"name": "alice"}},
			{"message": "two", "author": {"name": "Alice"}},
			{"message": "three", "author": {"name": "alice"}}
		]
	}`
	s := normalizeEvent("push", []byte(body))
	require.NotNil(t, s)
	require.Equal(t, []string{"alice", "Alice"}, s.(*entities.PushSummary).Authors)
}

func TestNormalizePushFileTags(t *testing.T) {
	// The same path under different change kinds coexists; identical
	// tag+path pairs collapse to one entry in first-seen order.
	body := `{
		"ref": "refs/heads/main",
		"repository": {"full_name": "org/repo", "html_url": "u"},
		"pusher": {"name": "p"},
		"commits": [
			{"message": "one", "author": {"name": "a"}, "added": ["x"], "modified": ["y"]},
			{"message": "two", "author": {"name": "a"}, "added": ["x"], "modified": ["x"], "removed": ["z"]}
		]
	}`
	s := normalizeEvent("push", []byte(body))
	require.NotNil(t, s)
	require.Equal(t, []string{"+ x", "~ y", "~ x", "- z"}, s.(*entities.PushSummary).ChangedFiles)
}

func TestNormalizePushMissingRepository(t *testing.T) {
	body := `{"ref": "refs/heads/main", "pusher": {"name": "p"}, "commits": []}`
	require.Nil(t, normalizeEvent("push", []byte(body)))
}

func TestNormalizeUnsupportedType(t *testing.T) {
	require.Nil(t, normalizeEvent("watch", []byte(`{}`)))
	require.Nil(t, normalizeEvent("", []byte(`{}`)))
}

func TestNormalizeMalformedJSON(t *testing.T) {
	require.Nil(t, normalizeEvent("push", []byte(`{not json`)))
	require.Nil(t, normalizeEvent("star", []byte(`[]`)))
}

func TestNormalizeStar(t *testing.T) {
	body := `{
		"action": "created",
		"repository": {"full_name": "org/repo", "html_url": "https://github.com/org/repo", "stargazers_count": 42},
		"sender": {"login": "carol", "html_url": "https://github.com/carol"}
	}`
	s := normalizeEvent("star", []byte(body))
	require.NotNil(t, s)

	star := s.(*entities.StarSummary)
	require.Equal(t, "created", star.Action)
	require.Equal(t, 42, star.StarCount)
	require.Equal(t, "carol", star.ActorLogin)
}

func TestNormalizeStarMissingSender(t *testing.T) {
	body := `{"action": "created", "repository": {"full_name": "org/repo"}}`
	require.Nil(t, normalizeEvent("star", []byte(body)))
}

func TestNormalizeFork(t *testing.T) {
	body := `{
		"forkee": {"full_name": "carol/repo", "html_url": "https://github.com/carol/repo"},
		"repository": {"full_name": "org/repo", "html_url": "https://github.com/org/repo", "forks_count": 7},
		"sender": {"login": "carol", "html_url": "https://github.com/carol"}
	}`
	s := normalizeEvent("fork", []byte(body))
	require.NotNil(t, s)

	fork := s.(*entities.ForkSummary)
	require.Equal(t, "carol/repo", fork.ForkName)
	require.Equal(t, 7, fork.ForkCount)
}

func TestNormalizeForkMissingForkee(t *testing.T) {
	body := `{"repository": {"full_name": "org/repo"}, "sender": {"login": "x"}}`
	require.Nil(t, normalizeEvent("fork", []byte(body)))
}

func issuesBody(action string) string {
	return `{
		"action": "` + action + `",
		"issue": {
			"number": 12, "title": "Crash on start", "html_url": "https://github.com/org/repo/issues/12",
			"body": "` + strings.Repeat("x", 250) + `",
			"labels": [{"name": "bug"}], "assignees": [{"login": "dave"}]
		},
		"repository": {"full_name": "org/repo", "html_url": "https://github.com/org/repo"},
		"sender": {"login": "erin", "html_url": "https://github.com/erin"}
	}`
}

func TestNormalizeIssues(t *testing.T) {
	s := normalizeEvent("issues", []byte(issuesBody("opened")))
	require.NotNil(t, s)

	issue := s.(*entities.IssueSummary)
	require.Equal(t, 12, issue.Number)
	require.Equal(t, []string{"bug"}, issue.Labels)
	require.Equal(t, []string{"dave"}, issue.Assignees)
	require.Len(t, issue.Body, 200)
}

func TestNormalizeIssuesActionFilter(t *testing.T) {
	for _, action := range []string{"edited", "labeled", "assigned", "milestoned"} {
		require.Nil(t, normalizeEvent("issues", []byte(issuesBody(action))), action)
	}
	for _, action := range []string{"opened", "closed", "reopened"} {
		require.NotNil(t, normalizeEvent("issues", []byte(issuesBody(action))), action)
	}
}

func pullRequestBody(action string, merged bool) string {
	m := "false"
	if merged {
		m = "true"
	}
	return `{
		"action": "` + action + `",
		"pull_request": {
			"number": 7, "title": "Refactor parser", "html_url": "https://github.com/org/repo/pull/7",
			"body": "short body",
			"labels": [], "assignees": [],
			"draft": false, "merged": ` + m + `,
			"base": {"ref": "main"}, "head": {"ref": "feature/parser"},
			"changed_files": 3, "additions": 120, "deletions": 45
		},
		"repository": {"full_name": "org/repo", "html_url": "https://github.com/org/repo"},
		"sender": {"login": "frank", "html_url": "https://github.com/frank"}
	}`
}

func TestNormalizePullRequest(t *testing.T) {
	s := normalizeEvent("pull_request", []byte(pullRequestBody("opened", false)))
	require.NotNil(t, s)

	pr := s.(*entities.PullRequestSummary)
	require.Equal(t, "main", pr.BaseBranch)
	require.Equal(t, "feature/parser", pr.HeadBranch)
	require.Equal(t, 3, pr.ChangedFiles)
	require.Equal(t, 120, pr.Additions)
	require.Equal(t, 45, pr.Deletions)
	require.False(t, pr.Merged)
}

func TestNormalizePullRequestMerged(t *testing.T) {
	s := normalizeEvent("pull_request", []byte(pullRequestBody("closed", true)))
	require.NotNil(t, s)
	require.True(t, s.(*entities.PullRequestSummary).Merged)
}

func TestNormalizePullRequestActionFilter(t *testing.T) {
	require.Nil(t, normalizeEvent("pull_request", []byte(pullRequestBody("synchronize", false))))
	require.Nil(t, normalizeEvent("pull_request", []byte(pullRequestBody("review_requested", false))))
}
