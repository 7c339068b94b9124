package domain

import (
	"fmt"
	"strings"

	"github.com/troublescope/github2gram/internal/entities"
)

const (
	maxCommitsShown  = 5
	maxFilesShown    = 8
	commitLineLimit  = 80
	bodyPreviewLimit = 150
	unknownEventText = "unknown event type"
)

// formatSummary renders a Summary into Telegram Markdown text plus an
// optional inline button layout. Identical input always yields byte-identical
// output.
func formatSummary(s entities.Summary) (string, *entities.ButtonLayout) {
	switch v := s.(type) {
	case *entities.PushSummary:
		return formatPush(v)
	case *entities.StarSummary:
		return formatStar(v)
	case *entities.ForkSummary:
		return formatFork(v)
	case *entities.PullRequestSummary:
		return formatPullRequest(v)
	case *entities.IssueSummary:
		return formatIssue(v)
	default:
		return unknownEventText, nil
	}
}

// repoTag renders the repository short name as a hashtag: "owner/repo" → "#repo".
func repoTag(fullName string) string {
	if i := strings.LastIndex(fullName, "/"); i >= 0 {
		return "#" + fullName[i+1:]
	}
	return "#" + fullName
}

// previewLine reduces a commit message to its first line, capped at limit
// characters with an ellipsis on truncation.
func previewLine(msg string, limit int) string {
	line := msg
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	r := []rune(line)
	if len(r) > limit {
		return string(r[:limit]) + "..."
	}
	return line
}

func formatPush(s *entities.PushSummary) (string, *entities.ButtonLayout) {
	var b strings.Builder

	fmt.Fprintf(&b, "🔨 *%s* pushed to *%s*\n", s.Pusher, repoTag(s.RepoName))
	fmt.Fprintf(&b, "🌿 Branch: `%s`\n", s.Branch)
	if len(s.Authors) > 0 {
		fmt.Fprintf(&b, "👤 Authors: %s\n", strings.Join(s.Authors, ", "))
	}

	if len(s.CommitMessages) > 0 {
		b.WriteString("\n📝 *Commits:*\n")
		shown := s.CommitMessages
		if len(shown) > maxCommitsShown {
			shown = shown[:maxCommitsShown]
		}
		for _, msg := range shown {
			fmt.Fprintf(&b, "• %s\n", previewLine(msg, commitLineLimit))
		}
		if rest := len(s.CommitMessages) - maxCommitsShown; rest > 0 {
			fmt.Fprintf(&b, "_...and %d more_\n", rest)
		}
	}

	if len(s.ChangedFiles) > 0 {
		b.WriteString("\n📁 *Changed files:*\n")
		shown := s.ChangedFiles
		if len(shown) > maxFilesShown {
			shown = shown[:maxFilesShown]
		}
		for _, f := range shown {
			fmt.Fprintf(&b, "`%s`\n", f)
		}
		if rest := len(s.ChangedFiles) - maxFilesShown; rest > 0 {
			fmt.Fprintf(&b, "_...and %d more_\n", rest)
		}
	}

	buttons := &entities.ButtonLayout{Rows: [][]entities.Button{{
		{Label: "🔍 View Changes", URL: s.CompareURL},
		{Label: "📦 Repository", URL: s.RepoURL},
	}}}
	return b.String(), buttons
}

func formatStar(s *entities.StarSummary) (string, *entities.ButtonLayout) {
	var b strings.Builder

	if s.Action == "deleted" {
		fmt.Fprintf(&b, "💔 *%s* unstarred *%s*\n", s.ActorLogin, repoTag(s.RepoName))
	} else {
		fmt.Fprintf(&b, "⭐ *%s* starred *%s*\n", s.ActorLogin, repoTag(s.RepoName))
	}
	fmt.Fprintf(&b, "✨ Total stars: *%d*", s.StarCount)

	buttons := &entities.ButtonLayout{Rows: [][]entities.Button{{
		{Label: "📦 Repository", URL: s.RepoURL},
		{Label: "👤 Profile", URL: s.ActorURL},
	}}}
	return b.String(), buttons
}

func formatFork(s *entities.ForkSummary) (string, *entities.ButtonLayout) {
	var b strings.Builder

	fmt.Fprintf(&b, "🍴 *%s* forked *%s*\n", s.ActorLogin, repoTag(s.RepoName))
	fmt.Fprintf(&b, "🌱 Total forks: *%d*", s.ForkCount)

	buttons := &entities.ButtonLayout{Rows: [][]entities.Button{{
		{Label: "📦 Repository", URL: s.RepoURL},
		{Label: "🍴 Fork", URL: s.ForkURL},
		{Label: "👤 Profile", URL: s.ActorURL},
	}}}
	return b.String(), buttons
}

func issueActionStyle(action string) (emoji, verb string) {
	switch action {
	case "closed":
		return "🔴", "closed"
	case "reopened":
		return "🔄", "reopened"
	default:
		return "🟢", "opened"
	}
}

func formatIssue(s *entities.IssueSummary) (string, *entities.ButtonLayout) {
	var b strings.Builder

	emoji, verb := issueActionStyle(s.Action)
	fmt.Fprintf(&b, "%s *%s* %s issue *#%d* in *%s*\n", emoji, s.ActorLogin, verb, s.Number, repoTag(s.RepoName))
	fmt.Fprintf(&b, "📌 %s\n", s.Title)
	writeLabelLines(&b, s.Labels, s.Assignees)
	writeBodyPreview(&b, s.Body)

	buttons := &entities.ButtonLayout{Rows: [][]entities.Button{{
		{Label: "🔗 Issue", URL: s.URL},
		{Label: "📦 Repository", URL: s.RepoURL},
		{Label: "👤 Profile", URL: s.ActorURL},
	}}}
	return b.String(), buttons
}

func formatPullRequest(s *entities.PullRequestSummary) (string, *entities.ButtonLayout) {
	var b strings.Builder

	emoji, verb := issueActionStyle(s.Action)
	if s.Action == "closed" && s.Merged {
		emoji, verb = "🟣", "merged"
	}
	fmt.Fprintf(&b, "%s *%s* %s pull request *#%d* in *%s*\n", emoji, s.ActorLogin, verb, s.Number, repoTag(s.RepoName))
	fmt.Fprintf(&b, "📌 %s\n", s.Title)
	fmt.Fprintf(&b, "🌿 `%s` → `%s`\n", s.HeadBranch, s.BaseBranch)
	if s.Draft {
		b.WriteString("📝 _Draft_\n")
	}
	writeLabelLines(&b, s.Labels, s.Assignees)
	if (s.Action == "opened" || s.Action == "reopened") &&
		(s.ChangedFiles > 0 || s.Additions > 0 || s.Deletions > 0) {
		fmt.Fprintf(&b, "📊 %d files changed, +%d -%d\n", s.ChangedFiles, s.Additions, s.Deletions)
	}
	writeBodyPreview(&b, s.Body)

	buttons := &entities.ButtonLayout{Rows: [][]entities.Button{{
		{Label: "🔗 Pull Request", URL: s.URL},
		{Label: "📦 Repository", URL: s.RepoURL},
		{Label: "👤 Profile", URL: s.ActorURL},
	}}}
	return b.String(), buttons
}

func writeLabelLines(b *strings.Builder, labels, assignees []string) {
	if len(labels) > 0 {
		spans := make([]string, 0, len(labels))
		for _, l := range labels {
			spans = append(spans, "`"+l+"`")
		}
		fmt.Fprintf(b, "🏷 Labels: %s\n", strings.Join(spans, ", "))
	}
	if len(assignees) > 0 {
		fmt.Fprintf(b, "👥 Assignees: %s\n", strings.Join(assignees, ", "))
	}
}

// writeBodyPreview appends a display-sized body excerpt with an ellipsis on
// truncation. The stored body is already capped larger at normalization.
func writeBodyPreview(b *strings.Builder, body string) {
	if body == "" {
		return
	}
	r := []rune(body)
	if len(r) > bodyPreviewLimit {
		fmt.Fprintf(b, "\n%s...", string(r[:bodyPreviewLimit]))
		return
	}
	fmt.Fprintf(b, "\n%s", body)
}
