package domain

import "strings"

// chatResolver maps a repository full name to its destination chat.
// Overrides are keyed by the full name with "/" folded to "_", matching the
// REPO_<name>_CHAT_ID environment naming; lookups are exact and
// case-sensitive, with the default chat as fallback.
type chatResolver struct {
	overrides     map[string]string
	defaultChatID string
}

func newChatResolver(overrides map[string]string, defaultChatID string) *chatResolver {
	if overrides == nil {
		overrides = make(map[string]string)
	}
	return &chatResolver{overrides: overrides, defaultChatID: defaultChatID}
}

func (r *chatResolver) Resolve(repoFullName string) string {
	key := strings.ReplaceAll(repoFullName, "/", "_")
	if chatID, ok := r.overrides[key]; ok {
		return chatID
	}
	return r.defaultChatID
}
