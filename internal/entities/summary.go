package entities

// EventType tags the supported GitHub webhook event kinds.
type EventType string

const (
	EventPush        EventType = "push"
	EventStar        EventType = "star"
	EventFork        EventType = "fork"
	EventIssues      EventType = "issues"
	EventPullRequest EventType = "pull_request"
)

// Supported reports whether the event type is one of the five handled kinds.
func (e EventType) Supported() bool {
	switch e {
	case EventPush, EventStar, EventFork, EventIssues, EventPullRequest:
		return true
	}
	return false
}

// Summary is the normalized, event-agnostic record derived from a raw
// payload. It is a closed sum over the five event kinds; a Summary is only
// ever constructed from a structurally valid payload of matching shape.
type Summary interface {
	Kind() EventType
	// Repo returns the repository full name ("owner/repo") for routing.
	Repo() string
}

// PushSummary is the normalized form of a branch push.
type PushSummary struct {
	RepoName       string
	RepoURL        string
	Branch         string
	CommitMessages []string
	Authors        []string
	ChangedFiles   []string
	CompareURL     string
	Pusher         string
}

func (s *PushSummary) Kind() EventType { return EventPush }
func (s *PushSummary) Repo() string    { return s.RepoName }

// StarSummary is the normalized form of a star/unstar.
type StarSummary struct {
	RepoName   string
	RepoURL    string
	Action     string
	ActorLogin string
	ActorURL   string
	StarCount  int
}

func (s *StarSummary) Kind() EventType { return EventStar }
func (s *StarSummary) Repo() string    { return s.RepoName }

// ForkSummary is the normalized form of a fork.
type ForkSummary struct {
	RepoName   string
	RepoURL    string
	ForkName   string
	ForkURL    string
	ActorLogin string
	ActorURL   string
	ForkCount  int
}

func (s *ForkSummary) Kind() EventType { return EventFork }
func (s *ForkSummary) Repo() string    { return s.RepoName }

// IssueSummary is the normalized form of an issue opened/closed/reopened.
type IssueSummary struct {
	RepoName   string
	RepoURL    string
	Number     int
	Title      string
	URL        string
	Action     string
	ActorLogin string
	ActorURL   string
	Labels     []string
	Assignees  []string
	Body       string
}

func (s *IssueSummary) Kind() EventType { return EventIssues }
func (s *IssueSummary) Repo() string    { return s.RepoName }

// PullRequestSummary is the normalized form of a PR opened/closed/reopened.
// It extends the issue shape with branch, draft/merged flags and diff stats.
type PullRequestSummary struct {
	IssueSummary
	BaseBranch   string
	HeadBranch   string
	Draft        bool
	Merged       bool
	ChangedFiles int
	Additions    int
	Deletions    int
}

func (s *PullRequestSummary) Kind() EventType { return EventPullRequest }
