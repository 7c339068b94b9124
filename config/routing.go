package config

import "strings"

const (
	routingKeyPrefix = "REPO_"
	routingKeySuffix = "_CHAT_ID"
)

// routingOverrides extracts repository→chat overrides from environment pairs
// of the form REPO_<name>_CHAT_ID=<chat id>. The middle token is kept verbatim
// as an opaque key; owner/repo separators appear in it as underscores, so a
// repository full name matches after folding "/" to "_". Underscores inside
// owner or repo names make the split point undecidable, which is why the
// token is never split.
func routingOverrides(environ []string) map[string]string {
	overrides := make(map[string]string)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" {
			continue
		}
		if len(key) <= len(routingKeyPrefix)+len(routingKeySuffix) {
			continue
		}
		if !strings.HasPrefix(key, routingKeyPrefix) || !strings.HasSuffix(key, routingKeySuffix) {
			continue
		}
		name := key[len(routingKeyPrefix) : len(key)-len(routingKeySuffix)]
		overrides[name] = value
	}
	return overrides
}
