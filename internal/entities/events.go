package entities

// Raw GitHub webhook payload shapes for the five supported event types.
// Required sub-objects are pointers so missing fields are detectable; a
// payload with any required field absent is discarded whole during
// normalization.

// Repository describes the repository a delivery originates from. The same
// shape covers the forkee of a fork event.
type Repository struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	HTMLURL         string `json:"html_url"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
}

// Sender is the acting GitHub user.
type Sender struct {
	Login   string `json:"login"`
	HTMLURL string `json:"html_url"`
}

// Pusher identifies who pushed, by display name.
type Pusher struct {
	Name string `json:"name"`
}

// CommitAuthor is the display identity on a pushed commit.
type CommitAuthor struct {
	Name string `json:"name"`
}

// Commit is one commit in a push payload.
type Commit struct {
	ID       string       `json:"id"`
	Message  string       `json:"message"`
	Author   CommitAuthor `json:"author"`
	Added    []string     `json:"added"`
	Removed  []string     `json:"removed"`
	Modified []string     `json:"modified"`
}

// PushPayload is the push event body.
type PushPayload struct {
	Ref        string      `json:"ref"`
	Compare    string      `json:"compare"`
	Repository *Repository `json:"repository"`
	Pusher     *Pusher     `json:"pusher"`
	Commits    []Commit    `json:"commits"`
}

// StarPayload is the star event body.
type StarPayload struct {
	Action     string      `json:"action"`
	Repository *Repository `json:"repository"`
	Sender     *Sender     `json:"sender"`
}

// ForkPayload is the fork event body.
type ForkPayload struct {
	Forkee     *Repository `json:"forkee"`
	Repository *Repository `json:"repository"`
	Sender     *Sender     `json:"sender"`
}

// Label is an issue or PR label.
type Label struct {
	Name string `json:"name"`
}

// Issue carries the fields used from an issues payload.
type Issue struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	HTMLURL   string   `json:"html_url"`
	Body      string   `json:"body"`
	Labels    []Label  `json:"labels"`
	Assignees []Sender `json:"assignees"`
}

// IssuesPayload is the issues event body.
type IssuesPayload struct {
	Action     string      `json:"action"`
	Issue      *Issue      `json:"issue"`
	Repository *Repository `json:"repository"`
	Sender     *Sender     `json:"sender"`
}

// Branch is one side of a pull request.
type Branch struct {
	Ref string `json:"ref"`
}

// PullRequest carries the fields used from a pull_request payload.
type PullRequest struct {
	Number       int      `json:"number"`
	Title        string   `json:"title"`
	HTMLURL      string   `json:"html_url"`
	Body         string   `json:"body"`
	Labels       []Label  `json:"labels"`
	Assignees    []Sender `json:"assignees"`
	Draft        bool     `json:"draft"`
	Merged       bool     `json:"merged"`
	Base         *Branch  `json:"base"`
	Head         *Branch  `json:"head"`
	ChangedFiles int      `json:"changed_files"`
	Additions    int      `json:"additions"`
	Deletions    int      `json:"deletions"`
}

// PullRequestPayload is the pull_request event body.
type PullRequestPayload struct {
	Action      string       `json:"action"`
	PullRequest *PullRequest `json:"pull_request"`
	Repository  *Repository  `json:"repository"`
	Sender      *Sender      `json:"sender"`
}
