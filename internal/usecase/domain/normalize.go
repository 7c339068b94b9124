package domain

import (
	"encoding/json"
	"strings"

	"github.com/troublescope/github2gram/internal/entities"
)

const (
	branchRefPrefix = "refs/heads/"
	// Normalization caps stored issue/PR body size; the formatter applies its
	// own shorter display cut on top.
	bodyStorageLimit = 200
)

var notifiableActions = map[string]struct{}{
	"opened":   {},
	"closed":   {},
	"reopened": {},
}

// normalizeEvent converts a raw payload of the given event type into a
// Summary. It returns nil for unsupported types, filtered events and
// structurally invalid payloads; a partially populated Summary is never
// produced.
func normalizeEvent(eventType string, body []byte) entities.Summary {
	switch entities.EventType(eventType) {
	case entities.EventPush:
		return normalizePush(body)
	case entities.EventStar:
		return normalizeStar(body)
	case entities.EventFork:
		return normalizeFork(body)
	case entities.EventIssues:
		return normalizeIssues(body)
	case entities.EventPullRequest:
		return normalizePullRequest(body)
	default:
		return nil
	}
}

// orderedSet accumulates unique strings preserving first-seen order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func normalizePush(body []byte) entities.Summary {
	var p entities.PushPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil
	}
	if p.Repository == nil || p.Pusher == nil {
		return nil
	}
	// Only branch pushes produce notifications; tag pushes and other refs
	// are filtered.
	if !strings.HasPrefix(p.Ref, branchRefPrefix) {
		return nil
	}

	messages := make([]string, 0, len(p.Commits))
	authors := newOrderedSet()
	files := newOrderedSet()
	for _, c := range p.Commits {
		messages = append(messages, c.Message)
		if c.Author.Name != "" {
			authors.add(c.Author.Name)
		}
		for _, f := range c.Added {
			files.add("+ " + f)
		}
		for _, f := range c.Removed {
			files.add("- " + f)
		}
		for _, f := range c.Modified {
			files.add("~ " + f)
		}
	}

	return &entities.PushSummary{
		RepoName:       p.Repository.FullName,
		RepoURL:        p.Repository.HTMLURL,
		Branch:         strings.TrimPrefix(p.Ref, branchRefPrefix),
		CommitMessages: messages,
		Authors:        authors.items,
		ChangedFiles:   files.items,
		CompareURL:     p.Compare,
		Pusher:         p.Pusher.Name,
	}
}

func normalizeStar(body []byte) entities.Summary {
	var p entities.StarPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil
	}
	if p.Action == "" || p.Repository == nil || p.Sender == nil {
		return nil
	}

	return &entities.StarSummary{
		RepoName:   p.Repository.FullName,
		RepoURL:    p.Repository.HTMLURL,
		Action:     p.Action,
		ActorLogin: p.Sender.Login,
		ActorURL:   p.Sender.HTMLURL,
		StarCount:  p.Repository.StargazersCount,
	}
}

func normalizeFork(body []byte) entities.Summary {
	var p entities.ForkPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil
	}
	if p.Forkee == nil || p.Repository == nil || p.Sender == nil {
		return nil
	}

	return &entities.ForkSummary{
		RepoName:   p.Repository.FullName,
		RepoURL:    p.Repository.HTMLURL,
		ForkName:   p.Forkee.FullName,
		ForkURL:    p.Forkee.HTMLURL,
		ActorLogin: p.Sender.Login,
		ActorURL:   p.Sender.HTMLURL,
		ForkCount:  p.Repository.ForksCount,
	}
}

func normalizeIssues(body []byte) entities.Summary {
	var p entities.IssuesPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil
	}
	if p.Action == "" || p.Issue == nil || p.Repository == nil || p.Sender == nil {
		return nil
	}
	// Edited/labeled/assigned and friends are noise for notification purposes.
	if _, ok := notifiableActions[p.Action]; !ok {
		return nil
	}

	return &entities.IssueSummary{
		RepoName:   p.Repository.FullName,
		RepoURL:    p.Repository.HTMLURL,
		Number:     p.Issue.Number,
		Title:      p.Issue.Title,
		URL:        p.Issue.HTMLURL,
		Action:     p.Action,
		ActorLogin: p.Sender.Login,
		ActorURL:   p.Sender.HTMLURL,
		Labels:     labelNames(p.Issue.Labels),
		Assignees:  assigneeLogins(p.Issue.Assignees),
		Body:       truncate(p.Issue.Body, bodyStorageLimit),
	}
}

func normalizePullRequest(body []byte) entities.Summary {
	var p entities.PullRequestPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil
	}
	if p.Action == "" || p.PullRequest == nil || p.Repository == nil || p.Sender == nil {
		return nil
	}
	if _, ok := notifiableActions[p.Action]; !ok {
		return nil
	}
	if p.PullRequest.Base == nil || p.PullRequest.Head == nil {
		return nil
	}

	pr := p.PullRequest
	return &entities.PullRequestSummary{
		IssueSummary: entities.IssueSummary{
			RepoName:   p.Repository.FullName,
			RepoURL:    p.Repository.HTMLURL,
			Number:     pr.Number,
			Title:      pr.Title,
			URL:        pr.HTMLURL,
			Action:     p.Action,
			ActorLogin: p.Sender.Login,
			ActorURL:   p.Sender.HTMLURL,
			Labels:     labelNames(pr.Labels),
			Assignees:  assigneeLogins(pr.Assignees),
			Body:       truncate(pr.Body, bodyStorageLimit),
		},
		BaseBranch:   pr.Base.Ref,
		HeadBranch:   pr.Head.Ref,
		Draft:        pr.Draft,
		Merged:       pr.Merged,
		ChangedFiles: pr.ChangedFiles,
		Additions:    pr.Additions,
		Deletions:    pr.Deletions,
	}
}

func labelNames(labels []entities.Label) []string {
	if len(labels) == 0 {
		return nil
	}
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.Name != "" {
			names = append(names, l.Name)
		}
	}
	return names
}

func assigneeLogins(assignees []entities.Sender) []string {
	if len(assignees) == 0 {
		return nil
	}
	logins := make([]string, 0, len(assignees))
	for _, a := range assignees {
		if a.Login != "" {
			logins = append(logins, a.Login)
		}
	}
	return logins
}

// truncate cuts s to at most limit characters without appending an ellipsis.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
